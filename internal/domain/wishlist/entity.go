// internal/domain/wishlist/entity.go
package wishlist

// Item represents a saved wishlist item. There is no quantity concept;
// the wishlist is a set keyed by product id.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
