// internal/domain/cart/store.go
package cart

import "sync"

// Store holds the shopping cart line items and derived totals. State is
// process-local and owned exclusively by the store; there is no backend
// persistence. Stores are passed by reference to consumers rather than held
// in package-level globals, and all reads return snapshot copies.
type Store struct {
	mu     sync.Mutex
	items  []Item
	totals Totals
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// AddItem adds an item to the cart. If a line with the same id already
// exists, its quantity is incremented by quantity instead of appending a
// duplicate line. A quantity below 1 is treated as 1.
func (s *Store) AddItem(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += quantity
			s.recalculate()
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.recalculate()
}

// UpdateQuantity sets the quantity for the matching line. A quantity below 1
// is clamped to 1; this call never removes a line. No-op if id is absent.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.recalculate()
			return
		}
	}
}

// RemoveItem deletes the line with the given id if present
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recalculate()
			return
		}
	}
}

// Clear empties all lines; used after checkout completion
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.recalculate()
}

// Items returns a snapshot copy of the current line items
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Totals returns the current derived totals
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Total returns the current cart total
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals.Total
}

// Len returns the number of distinct line items
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsEmpty reports whether the cart has no line items
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// recalculate recomputes derived totals. Caller must hold the lock.
func (s *Store) recalculate() {
	var totals Totals

	totals.ItemCount = len(s.items)
	for _, item := range s.items {
		totals.TotalQuantity += item.Quantity
		totals.Total += item.Subtotal()
	}

	s.totals = totals
}
