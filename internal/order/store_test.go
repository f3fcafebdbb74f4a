package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("List newest first", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Order{ID: "a", Date: day}))
		require.NoError(t, s.Add(Order{ID: "c", Date: day.Add(2 * time.Hour)}))
		require.NoError(t, s.Add(Order{ID: "b", Date: day.Add(time.Hour)}))

		var ids []string
		for _, o := range s.List() {
			ids = append(ids, o.ID)
		}
		assert.Equal(t, []string{"c", "b", "a"}, ids)
	})

	t.Run("Add defaults and validates", func(t *testing.T) {
		s := NewStore()
		assert.ErrorIs(t, s.Add(Order{}), ErrMissingID)

		require.NoError(t, s.Add(Order{ID: "y", Status: "awaiting_payment"}))
		o, ok := s.Get("y")
		require.True(t, ok)
		assert.Equal(t, Status("awaiting_payment"), o.Status)

		require.NoError(t, s.Add(Order{ID: "x"}))
		o, ok = s.Get("x")
		require.True(t, ok)
		assert.Equal(t, StatusPending, o.Status)

		// Same id replaces.
		require.NoError(t, s.Add(Order{ID: "x", Total: 5}))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Order{ID: "x"}))

		require.NoError(t, s.UpdateStatus("x", StatusShipped))
		o, _ := s.Get("x")
		assert.Equal(t, StatusShipped, o.Status)

		assert.ErrorIs(t, s.UpdateStatus("nope", StatusShipped), ErrOrderNotFound)
		assert.ErrorIs(t, s.UpdateStatus("x", "teleported"), ErrUnknownStatus)
	})

	t.Run("Replace and Clear notify", func(t *testing.T) {
		s := NewStore()
		var last []Order
		calls := 0
		s.Subscribe(func(o []Order) {
			calls++
			last = o
		})

		s.Replace([]Order{{ID: "a", Status: "refunded"}, {ID: ""}, {ID: "b", Status: StatusDelivered}, {ID: "c"}})
		require.Len(t, last, 3)
		got, _ := s.Get("a")
		assert.Equal(t, Status("refunded"), got.Status)
		got, _ = s.Get("c")
		assert.Equal(t, StatusPending, got.Status)

		s.Clear()
		assert.Empty(t, last)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 2, calls)
	})
}
