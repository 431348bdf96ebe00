// Package managers implements the commerce state operations: cart
// accumulation, checkout into order history, profile editing, and
// authentication. Every operation persists through the shared key-value
// store; mutations of a key run under that key's lock so concurrent
// read-modify-write sequences cannot lose updates.
package managers

import (
	"context"
	"log/slog"

	"shopcore/codec"
	"shopcore/models"
	"shopcore/store"
)

// CartManager owns the active cart of each user, keyed by the user's email.
type CartManager struct {
	store  store.KeyValueStore
	locks  *store.KeyLock
	logger *slog.Logger
}

// NewCartManager creates a new CartManager. The lock registry must be shared
// with the OrderManager operating on the same store, so a checkout and a
// quantity change on the same cart cannot interleave.
func NewCartManager(kv store.KeyValueStore, locks *store.KeyLock, logger *slog.Logger) *CartManager {
	return &CartManager{store: kv, locks: locks, logger: logger}
}

// LoadCart reads the user's cart. An absent or undecodable record yields an
// empty cart; only store I/O failures are returned as errors.
func (cm *CartManager) LoadCart(ctx context.Context, email string) ([]models.CartItem, error) {
	return cm.load(ctx, email)
}

// AddToCart adds one unit of the product to the user's cart. If the product
// is already present its quantity is incremented; otherwise a new line is
// appended with the product's fields copied at time of add. The updated cart
// is persisted before it is returned, so a failed persist never advances the
// visible state.
func (cm *CartManager) AddToCart(ctx context.Context, email string, product models.Product) ([]models.CartItem, error) {
	unlock := cm.locks.Lock(store.CartKey(email))
	defer unlock()

	items, err := cm.load(ctx, email)
	if err != nil {
		return nil, err
	}

	updated := false
	for i, existing := range items {
		if existing.ProductID == product.ID {
			items[i].Quantity++
			updated = true
			break
		}
	}
	if !updated {
		items = append(items, models.NewCartItem(product))
	}

	if err := cm.persist(ctx, email, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ChangeQuantity adds delta to the quantity of the matching cart line and
// drops any line whose quantity falls to zero or below. Changing a product
// that is not in the cart is a no-op.
func (cm *CartManager) ChangeQuantity(ctx context.Context, email string, productID, delta int) ([]models.CartItem, error) {
	unlock := cm.locks.Lock(store.CartKey(email))
	defer unlock()

	items, err := cm.load(ctx, email)
	if err != nil {
		return nil, err
	}

	updated := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			item.Quantity += delta
		}
		if item.Quantity > 0 {
			updated = append(updated, item)
		}
	}

	if err := cm.persist(ctx, email, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ClearCart removes the user's cart record entirely.
func (cm *CartManager) ClearCart(ctx context.Context, email string) error {
	unlock := cm.locks.Lock(store.CartKey(email))
	defer unlock()
	return cm.store.Remove(ctx, store.CartKey(email))
}

// ComputeTotal sums price times quantity over the cart. Totals are always
// recomputed from the current lines, never cached.
func ComputeTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (cm *CartManager) load(ctx context.Context, email string) ([]models.CartItem, error) {
	raw, ok, err := cm.store.Get(ctx, store.CartKey(email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.CartItem{}, nil
	}
	items, err := codec.DecodeCart(raw)
	if err != nil {
		cm.logger.Warn("discarding undecodable cart record", "email", email, "error", err)
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (cm *CartManager) persist(ctx context.Context, email string, items []models.CartItem) error {
	encoded, err := codec.EncodeCart(items)
	if err != nil {
		return err
	}
	return cm.store.Set(ctx, store.CartKey(email), encoded)
}
