package cart

import (
	"sync"

	"marketplace-client/internal/metrics"
	"marketplace-client/internal/store"
)

// Store is the local cart. It holds at most one line per Key and keeps lines
// in the order they were first added.
type Store struct {
	mu        sync.RWMutex
	items     []Item
	version   uint64
	listeners store.Listeners[[]Item]
}

func NewStore() *Store {
	return &Store{}
}

// Add merges item into the line with the same key, or appends a new line.
func (s *Store) Add(item Item) error {
	if item.Product.ID == "" {
		return ErrMissingProductID
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mutate(func(items []Item) []Item {
		if i := indexOf(items, item.Key()); i >= 0 {
			items[i].Quantity += item.Quantity
			if item.ID != "" {
				items[i].ID = item.ID
			}
			return items
		}
		return append(items, item)
	})
	return nil
}

// Remove drops the line for (productID, size) and reports whether one existed.
func (s *Store) Remove(productID, size string) bool {
	removed := false
	s.mutate(func(items []Item) []Item {
		i := indexOf(items, Key{ProductID: productID, Size: size})
		if i < 0 {
			return items
		}
		removed = true
		return append(items[:i], items[i+1:]...)
	})
	return removed
}

// UpdateQuantity sets the quantity of an existing line. quantity <= 0 removes it.
func (s *Store) UpdateQuantity(productID, size string, quantity int) error {
	var err error
	s.mutate(func(items []Item) []Item {
		i := indexOf(items, Key{ProductID: productID, Size: size})
		if i < 0 {
			err = ErrCartItemNotFound
			return items
		}
		if quantity <= 0 {
			return append(items[:i], items[i+1:]...)
		}
		items[i].Quantity = quantity
		return items
	})
	return err
}

// Replace swaps the whole cart, e.g. with the server's copy. Lines sharing a
// key are merged and lines with a non-positive quantity are dropped.
func (s *Store) Replace(items []Item) {
	s.mutate(func([]Item) []Item {
		next := make([]Item, 0, len(items))
		for _, it := range items {
			if it.Quantity < 1 || it.Product.ID == "" {
				continue
			}
			if i := indexOf(next, it.Key()); i >= 0 {
				next[i].Quantity += it.Quantity
				continue
			}
			next = append(next, it)
		}
		return next
	})
}

func (s *Store) Clear() {
	s.mutate(func([]Item) []Item { return nil })
}

// Items returns a copy of the lines.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

func (s *Store) Get(productID, size string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.items, Key{ProductID: productID, Size: size}); i >= 0 {
		return s.items[i], true
	}
	return Item{}, false
}

// Count is the number of units, not lines.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return count(s.items)
}

// Total is the cart value: the sum of price*quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Total(s.items)
}

func (s *Store) Subscribe(fn func([]Item)) func() {
	return s.listeners.Subscribe(fn)
}

func (s *Store) mutate(fn func([]Item) []Item) {
	s.mu.Lock()
	s.items = fn(s.items)
	s.version++
	version := s.version
	snapshot := append([]Item(nil), s.items...)
	metrics.SetCartItems(count(s.items))
	s.mu.Unlock()

	s.listeners.Publish(version, snapshot)
}

// Total sums price*quantity over items.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

func count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func indexOf(items []Item, key Key) int {
	for i, it := range items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}
