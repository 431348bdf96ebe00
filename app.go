// Package shopcore is the local commerce state layer of the shopping app:
// carts, order history, profiles, and authentication persisted in a single
// string-keyed store. Screens call the managers; nothing here renders,
// routes, or talks to a network besides the selected storage backend.
package shopcore

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopcore/config"
	"shopcore/logging"
	"shopcore/managers"
	"shopcore/store"
	"shopcore/utils"
)

// App wires the configured store backend into the four managers. Construct
// one per process with New and share it across screens.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Store   store.KeyValueStore
	Cart    *managers.CartManager
	Orders  *managers.OrderManager
	Profile *managers.ProfileManager
	Auth    *managers.AuthManager

	mongoClient *mongo.Client
}

// New builds the state layer from configuration: store backend, session
// token key, optional confirmation email sender, and the managers on top.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger := logging.New(cfg.Logging)

	if cfg.Auth.JWTSecret != "" {
		utils.JwtKey = []byte(cfg.Auth.JWTSecret)
	}
	if cfg.Auth.SessionTTL > 0 {
		utils.SessionDuration = cfg.Auth.SessionTTL
	}

	var (
		kv          store.KeyValueStore
		mongoClient *mongo.Client
	)
	switch cfg.Store.Backend {
	case "memory":
		kv = store.NewMemoryStore()
	case "file":
		kv = store.NewOSFileStore(cfg.Store.FileDir)
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Store.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		kv = store.NewMongoStore(client, cfg.Store.MongoDatabase)
		mongoClient = client
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	var emailService *utils.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		es, err := utils.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.Sender)
		if err != nil {
			logger.Warn("email disabled", "error", err)
		} else {
			emailService = es
		}
	}

	locks := store.NewKeyLock()
	profile := managers.NewProfileManager(kv, locks, logger)
	cart := managers.NewCartManager(kv, locks, logger)
	orders := managers.NewOrderManager(kv, locks, profile, emailService, logger)
	auth := managers.NewAuthManager(profile, kv, logger)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Store:       kv,
		Cart:        cart,
		Orders:      orders,
		Profile:     profile,
		Auth:        auth,
		mongoClient: mongoClient,
	}, nil
}

// Close releases backend resources. Only the Mongo backend holds any.
func (a *App) Close(ctx context.Context) error {
	if a.mongoClient != nil {
		return a.mongoClient.Disconnect(ctx)
	}
	return nil
}
