// internal/domain/cart/entity.go
package cart

// Item represents a cart line item: one product id with an associated quantity
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line total for this item
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of distinct line items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	Total         float64 `json:"total"`          // Sum of price * quantity over all lines
}
