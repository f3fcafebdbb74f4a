package wishlist

import (
	"sync"

	"marketplace-client/internal/product"
	"marketplace-client/internal/store"
)

// Store is the local favorites set, keyed by product id. Insertion order is
// kept for display.
type Store struct {
	mu        sync.RWMutex
	items     []product.Product
	version   uint64
	listeners store.Listeners[[]product.Product]
}

func NewStore() *Store {
	return &Store{}
}

// Add is idempotent: a product already present is left as is.
func (s *Store) Add(p product.Product) error {
	if p.ID == "" {
		return ErrMissingProductID
	}
	s.mutate(func(items []product.Product) []product.Product {
		if indexOf(items, p.ID) >= 0 {
			return items
		}
		return append(items, p)
	})
	return nil
}

func (s *Store) Remove(productID string) bool {
	removed := false
	s.mutate(func(items []product.Product) []product.Product {
		i := indexOf(items, productID)
		if i < 0 {
			return items
		}
		removed = true
		return append(items[:i], items[i+1:]...)
	})
	return removed
}

// Toggle flips membership and returns whether p is a favorite afterwards.
func (s *Store) Toggle(p product.Product) (bool, error) {
	if p.ID == "" {
		return false, ErrMissingProductID
	}
	var now bool
	s.mutate(func(items []product.Product) []product.Product {
		if i := indexOf(items, p.ID); i >= 0 {
			return append(items[:i], items[i+1:]...)
		}
		now = true
		return append(items, p)
	})
	return now, nil
}

func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.items, productID) >= 0
}

func (s *Store) Items() []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]product.Product(nil), s.items...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Replace loads a fresh set; duplicate ids keep their first occurrence.
func (s *Store) Replace(items []product.Product) {
	s.mutate(func([]product.Product) []product.Product {
		next := make([]product.Product, 0, len(items))
		for _, p := range items {
			if p.ID == "" || indexOf(next, p.ID) >= 0 {
				continue
			}
			next = append(next, p)
		}
		return next
	})
}

func (s *Store) Clear() {
	s.mutate(func([]product.Product) []product.Product { return nil })
}

func (s *Store) Subscribe(fn func([]product.Product)) func() {
	return s.listeners.Subscribe(fn)
}

func (s *Store) mutate(fn func([]product.Product) []product.Product) {
	s.mu.Lock()
	s.items = fn(s.items)
	s.version++
	version := s.version
	snapshot := append([]product.Product(nil), s.items...)
	s.mu.Unlock()

	s.listeners.Publish(version, snapshot)
}

func indexOf(items []product.Product, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
