package managers

import (
	"io"
	"log/slog"

	"shopcore/models"
	"shopcore/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	kv      *store.MemoryStore
	cart    *CartManager
	orders  *OrderManager
	profile *ProfileManager
	auth    *AuthManager
}

func newTestEnv() *testEnv {
	kv := store.NewMemoryStore()
	locks := store.NewKeyLock()
	logger := testLogger()
	profile := NewProfileManager(kv, locks, logger)
	cart := NewCartManager(kv, locks, logger)
	orders := NewOrderManager(kv, locks, profile, nil, logger)
	auth := NewAuthManager(profile, kv, logger)
	return &testEnv{kv: kv, cart: cart, orders: orders, profile: profile, auth: auth}
}

func phone() models.Product {
	return models.Product{ID: 1, Title: "Phone", Thumbnail: "phone.png", Price: 10, Category: "electronics"}
}

func mug() models.Product {
	return models.Product{ID: 2, Title: "Mug", Thumbnail: "mug.png", Price: 7, Category: "kitchen"}
}
