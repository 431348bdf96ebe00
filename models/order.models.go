package models

import "time"

// Order is an immutable snapshot of a completed checkout. ID is the creation
// timestamp in unix milliseconds and doubles as the unique order id; the
// history sequence is append-only and never pruned.
type Order struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Date  time.Time  `json:"date"`
}
