package models

// Product is a catalog entry. The catalog is static read-only input; the
// state layer copies product fields into cart items and never writes back.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Thumbnail   string  `json:"thumbnail"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}
