package models

// CartItem is one line of a cart: a snapshot of the product at the time it
// was added plus the accumulated quantity. Price is captured, not referenced
// live, so later catalog changes do not move an existing cart line.
type CartItem struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// NewCartItem copies product fields into a fresh cart line with quantity 1.
func NewCartItem(p Product) CartItem {
	return CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Thumbnail: p.Thumbnail,
		Price:     p.Price,
		Category:  p.Category,
		Quantity:  1,
	}
}
