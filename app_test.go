package shopcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcore/config"
	"shopcore/managers"
	"shopcore/models"
)

func memoryConfig() config.Config {
	return config.Config{
		Store:   config.StoreConfig{Backend: "memory"},
		Auth:    config.AuthConfig{JWTSecret: "test-secret"},
		Logging: config.LoggingConfig{Level: "error"},
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Backend = "carrier-pigeon"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

func TestShoppingSession(t *testing.T) {
	ctx := context.Background()
	app, err := New(ctx, memoryConfig())
	require.NoError(t, err)
	defer app.Close(ctx)

	user, err := app.Auth.SignUp(ctx, "Alice Smith", "alice@example.com", "pw")
	require.NoError(t, err)

	product := models.Product{ID: 1, Title: "Phone", Price: 549.99, Category: "electronics"}
	items, err := app.Cart.AddToCart(ctx, user.Email, product)
	require.NoError(t, err)
	assert.Equal(t, 549.99, managers.ComputeTotal(items))

	order, err := app.Orders.Checkout(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, 549.99, order.Total)

	items, err = app.Cart.LoadCart(ctx, user.Email)
	require.NoError(t, err)
	assert.Empty(t, items)

	history, err := app.Orders.ListOrders(ctx, user.Email)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	require.NoError(t, app.Auth.SignOut(ctx))
	_, ok, err := app.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
