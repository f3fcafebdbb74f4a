// Package store holds the plumbing shared by the client-side state
// containers: a typed listener set so screens (or the CLI) can react to
// every mutation.
package store

import "sync"

type Listeners[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)

	deliver   sync.Mutex
	delivered uint64
}

// Subscribe registers fn and returns a func that removes it again.
func (l *Listeners[T]) Subscribe(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs == nil {
		l.subs = make(map[int]func(T))
	}
	id := l.nextID
	l.nextID++
	l.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
}

// Notify calls every listener with v. Listeners run outside the lock, so they
// may read the store or unsubscribe themselves.
func (l *Listeners[T]) Notify(v T) {
	l.mu.Lock()
	fns := make([]func(T), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Publish is Notify for versioned snapshots. Deliveries are serialized and a
// version at or below one already delivered is dropped, so listeners never
// go back to an older state when mutations race. A listener must not publish
// to the same set from inside its callback.
func (l *Listeners[T]) Publish(version uint64, v T) {
	l.deliver.Lock()
	defer l.deliver.Unlock()

	if version <= l.delivered {
		return
	}
	l.delivered = version
	l.Notify(v)
}

func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
