package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Store   StoreConfig
	Auth    AuthConfig
	Email   EmailConfig
	Logging LoggingConfig
}

// StoreConfig selects and parameterizes the key-value store backend.
type StoreConfig struct {
	Backend       string // memory|file|mongo
	FileDir       string
	MongoURI      string
	MongoDatabase string
}

// AuthConfig governs session tokens and password hashing.
type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

// EmailConfig configures the optional order-confirmation sender.
type EmailConfig struct {
	SendGridAPIKey string
	Sender         string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultBackend       = "file"
	defaultFileDir       = "data"
	defaultMongoDatabase = "shopcore"
	defaultSessionTTL    = 24 * time.Hour
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from a .env file when present, then from
// environment variables, applying defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := Config{
		Store: StoreConfig{
			Backend:       valueOrDefault("STORE_BACKEND", defaultBackend),
			FileDir:       valueOrDefault("STORE_FILE_DIR", defaultFileDir),
			MongoURI:      os.Getenv("MONGO_URI"),
			MongoDatabase: valueOrDefault("MONGO_DATABASE", defaultMongoDatabase),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			SessionTTL: defaultSessionTTL,
		},
		Email: EmailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			Sender:         os.Getenv("EMAIL_SENDER"),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.Auth.SessionTTL = d
	}

	switch cfg.Store.Backend {
	case "memory", "file":
	case "mongo":
		if cfg.Store.MongoURI == "" {
			return Config{}, fmt.Errorf("STORE_BACKEND is mongo but MONGO_URI is not set")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
