package order

import (
	"cmp"
	"slices"
	"sync"

	"marketplace-client/internal/cart"
	"marketplace-client/internal/store"
)

// Store keeps shadow copies of the user's orders, one per id.
type Store struct {
	mu        sync.RWMutex
	orders    map[string]Order
	version   uint64
	listeners store.Listeners[[]Order]
}

func NewStore() *Store {
	return &Store{orders: make(map[string]Order)}
}

// Add inserts o, replacing any shadow with the same id. An empty status
// means pending; any other status is stored as given.
func (s *Store) Add(o Order) error {
	if o.ID == "" {
		return ErrMissingID
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	o.Items = append([]cart.Item(nil), o.Items...)

	s.mutate(func(m map[string]Order) { m[o.ID] = o })
	return nil
}

// UpdateStatus only accepts the known statuses.
func (s *Store) UpdateStatus(id string, status Status) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}

	var err error
	s.mutate(func(m map[string]Order) {
		o, ok := m[id]
		if !ok {
			err = ErrOrderNotFound
			return
		}
		o.Status = status
		m[id] = o
	})
	return err
}

func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// List returns the orders newest first.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.orders)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Replace swaps every shadow for orders; entries without an id are skipped.
// As with Add, statuses this client does not know are kept verbatim.
func (s *Store) Replace(orders []Order) {
	s.mutate(func(m map[string]Order) {
		clear(m)
		for _, o := range orders {
			if o.ID == "" {
				continue
			}
			if o.Status == "" {
				o.Status = StatusPending
			}
			m[o.ID] = o
		}
	})
}

func (s *Store) Clear() {
	s.mutate(func(m map[string]Order) { clear(m) })
}

func (s *Store) Subscribe(fn func([]Order)) func() {
	return s.listeners.Subscribe(fn)
}

func (s *Store) mutate(fn func(map[string]Order)) {
	s.mu.Lock()
	fn(s.orders)
	s.version++
	version := s.version
	snapshot := sorted(s.orders)
	s.mu.Unlock()

	s.listeners.Publish(version, snapshot)
}

func sorted(m map[string]Order) []Order {
	out := make([]Order, 0, len(m))
	for _, o := range m {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b Order) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
