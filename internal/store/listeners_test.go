package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var l Listeners[int]

	var got []int
	unsub := l.Subscribe(func(v int) { got = append(got, v) })
	assert.Equal(t, 1, l.Len())

	l.Notify(1)
	l.Notify(2)
	assert.Equal(t, []int{1, 2}, got)

	unsub()
	unsub()
	assert.Equal(t, 0, l.Len())

	l.Notify(3)
	assert.Equal(t, []int{1, 2}, got)
}

func TestListeners_UnsubscribeInsideCallback(t *testing.T) {
	var l Listeners[string]

	calls := 0
	var unsub func()
	unsub = l.Subscribe(func(string) {
		calls++
		unsub()
	})

	l.Notify("a")
	l.Notify("b")
	assert.Equal(t, 1, calls)
}

func TestListeners_Concurrent(t *testing.T) {
	var l Listeners[int]
	var mu sync.Mutex
	total := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := l.Subscribe(func(v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			l.Notify(1)
			unsub()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, l.Len())
	assert.GreaterOrEqual(t, total, 20)
}

func TestListeners_PublishDropsStale(t *testing.T) {
	var l Listeners[string]

	var got []string
	l.Subscribe(func(v string) { got = append(got, v) })

	l.Publish(1, "first")
	l.Publish(3, "third")
	l.Publish(2, "second")
	l.Publish(3, "third again")

	assert.Equal(t, []string{"first", "third"}, got)
}

func TestListeners_PublishConcurrentEndsOnNewest(t *testing.T) {
	var l Listeners[uint64]

	var mu sync.Mutex
	var seen []uint64
	l.Subscribe(func(v uint64) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := uint64(1); i <= 50; i++ {
		wg.Add(1)
		go func(v uint64) {
			defer wg.Done()
			l.Publish(v, v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
	// The newest version is always delivered, whichever goroutine ran last.
	assert.Equal(t, uint64(50), seen[len(seen)-1])
}
