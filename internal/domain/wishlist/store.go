// internal/domain/wishlist/store.go
package wishlist

import "sync"

// Store holds a de-duplicated set of saved items with strict id equality.
// Like the cart store it is process-local and injected into consumers;
// reads return snapshot copies.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore creates an empty wishlist store
func NewStore() *Store {
	return &Store{}
}

// AddItem adds an item to the wishlist. Adding an id that is already present
// is a no-op, so the call is idempotent.
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			return
		}
	}

	s.items = append(s.items, item)
}

// RemoveItem deletes the item with the given id if present
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear removes all items from the wishlist
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Contains reports whether an item with the given id is in the wishlist
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the saved items
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of saved items
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
