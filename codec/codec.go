// Package codec serializes domain records to and from the string format the
// key-value store holds. Decoding validates record shape: a malformed or
// incomplete payload yields a DECODE_ERROR, which callers treat as "record
// absent" rather than a crash.
package codec

import (
	"encoding/json"
	"strings"

	"shopcore/errs"
	"shopcore/models"
)

// EncodeUser serializes a user record.
func EncodeUser(u models.User) (string, error) {
	return encode(u, "user")
}

// DecodeUser deserializes and validates a user record.
func DecodeUser(s string) (models.User, error) {
	var u models.User
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return models.User{}, errs.Wrap(errs.CodeDecode, "malformed user record", err)
	}
	if strings.TrimSpace(u.Email) == "" {
		return models.User{}, errs.New(errs.CodeDecode, "user record missing email")
	}
	if u.FullName == "" {
		return models.User{}, errs.New(errs.CodeDecode, "user record missing full name")
	}
	return u, nil
}

// EncodeCart serializes a cart item sequence.
func EncodeCart(items []models.CartItem) (string, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	return encode(items, "cart")
}

// DecodeCart deserializes and validates a cart item sequence.
func DecodeCart(s string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, errs.Wrap(errs.CodeDecode, "malformed cart record", err)
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, errs.Newf(errs.CodeDecode, "cart item %d has quantity %d", it.ProductID, it.Quantity)
		}
		if it.Price < 0 {
			return nil, errs.Newf(errs.CodeDecode, "cart item %d has negative price", it.ProductID)
		}
	}
	return items, nil
}

// EncodeOrders serializes an order history sequence.
func EncodeOrders(orders []models.Order) (string, error) {
	if orders == nil {
		orders = []models.Order{}
	}
	return encode(orders, "orders")
}

// DecodeOrders deserializes and validates an order history sequence.
func DecodeOrders(s string) ([]models.Order, error) {
	var orders []models.Order
	if err := json.Unmarshal([]byte(s), &orders); err != nil {
		return nil, errs.Wrap(errs.CodeDecode, "malformed order history", err)
	}
	for _, o := range orders {
		if o.ID == 0 {
			return nil, errs.New(errs.CodeDecode, "order record missing id")
		}
	}
	return orders, nil
}

func encode(v any, kind string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errs.Wrap(errs.CodeDecode, "cannot encode "+kind+" record", err)
	}
	return string(b), nil
}
