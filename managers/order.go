package managers

import (
	"context"
	"log/slog"
	"time"

	"shopcore/codec"
	"shopcore/errs"
	"shopcore/models"
	"shopcore/store"
	"shopcore/utils"
)

// OrderManager converts carts into immutable orders and owns the append-only
// order history of each user.
type OrderManager struct {
	store   store.KeyValueStore
	locks   *store.KeyLock
	profile *ProfileManager
	email   *utils.EmailService
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderManager creates a new OrderManager. The email service may be nil,
// in which case no confirmation is sent. The lock registry must be the one
// the CartManager uses.
func NewOrderManager(kv store.KeyValueStore, locks *store.KeyLock, profile *ProfileManager, email *utils.EmailService, logger *slog.Logger) *OrderManager {
	return &OrderManager{
		store:   kv,
		locks:   locks,
		profile: profile,
		email:   email,
		logger:  logger,
		now:     time.Now,
	}
}

// Checkout snapshots the user's cart into a new order, appends it to the
// order history, then clears the cart. The two writes are one logical
// transaction: if the history append fails nothing changed and the whole
// checkout can be retried; if only the cart clear fails, the order is already
// recorded and the returned error carries code CART_CLEAR_FAILED — recover
// with RetryClearCart, which never appends a second order.
func (om *OrderManager) Checkout(ctx context.Context, email string) (models.Order, error) {
	// Lock ordering is fixed (cart before orders) so concurrent checkouts
	// cannot deadlock.
	unlockCart := om.locks.Lock(store.CartKey(email))
	defer unlockCart()
	unlockOrders := om.locks.Lock(store.OrdersKey(email))
	defer unlockOrders()

	items, err := om.loadCart(ctx, email)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, errs.New(errs.CodeEmptyCart, "cannot check out an empty cart")
	}

	now := om.now()
	order := models.Order{
		ID:    now.UnixMilli(),
		Items: items,
		Total: ComputeTotal(items),
		Date:  now,
	}

	history, err := om.loadOrders(ctx, email)
	if err != nil {
		return models.Order{}, err
	}
	history = append(history, order)

	encoded, err := codec.EncodeOrders(history)
	if err != nil {
		return models.Order{}, err
	}
	if err := om.store.Set(ctx, store.OrdersKey(email), encoded); err != nil {
		return models.Order{}, err
	}

	if err := om.store.Remove(ctx, store.CartKey(email)); err != nil {
		return order, errs.Wrap(errs.CodeCartClearFailed, "order recorded but cart clear failed", err)
	}

	om.sendReceipt(ctx, email, order)
	return order, nil
}

// RetryClearCart finishes an interrupted checkout by clearing the cart. It
// only clears; the order appended by the failed checkout is left untouched.
func (om *OrderManager) RetryClearCart(ctx context.Context, email string) error {
	unlock := om.locks.Lock(store.CartKey(email))
	defer unlock()
	return om.store.Remove(ctx, store.CartKey(email))
}

// ListOrders returns the user's order history, newest last. Absent or
// undecodable history yields an empty sequence.
func (om *OrderManager) ListOrders(ctx context.Context, email string) ([]models.Order, error) {
	return om.loadOrders(ctx, email)
}

func (om *OrderManager) loadCart(ctx context.Context, email string) ([]models.CartItem, error) {
	raw, ok, err := om.store.Get(ctx, store.CartKey(email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	items, err := codec.DecodeCart(raw)
	if err != nil {
		om.logger.Warn("discarding undecodable cart record", "email", email, "error", err)
		return nil, nil
	}
	return items, nil
}

func (om *OrderManager) loadOrders(ctx context.Context, email string) ([]models.Order, error) {
	raw, ok, err := om.store.Get(ctx, store.OrdersKey(email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Order{}, nil
	}
	orders, err := codec.DecodeOrders(raw)
	if err != nil {
		om.logger.Warn("discarding undecodable order history", "email", email, "error", err)
		return []models.Order{}, nil
	}
	return orders, nil
}

func (om *OrderManager) sendReceipt(ctx context.Context, email string, order models.Order) {
	if om.email == nil {
		return
	}
	user, ok, err := om.profile.GetUser(ctx, email)
	if err != nil || !ok {
		om.logger.Warn("skipping order confirmation, user record unavailable", "email", email, "error", err)
		return
	}
	if err := om.email.SendOrderConfirmationEmail(user.Email, user.FullName, order); err != nil {
		om.logger.Warn("failed to send order confirmation", "email", email, "error", err)
	}
}
