package order

import (
	"context"
	"net/http"
	"testing"

	"marketplace-client/internal/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	srv := apitest.New(t)
	repo := NewRepository(srv.API)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		srv.OK(http.MethodPost, "/orders/create", `{"id":"o1","status":"pending","totalAmount":30}`)

		rec, err := repo.Create(ctx, CreateParams{
			Items:           []LineParams{{ProductID: "p1", Quantity: 3, Price: 10}},
			TotalAmount:     30,
			ShippingAddress: "12 Le Loi",
		})
		require.NoError(t, err)
		assert.Equal(t, "o1", rec.ID)

		body := srv.Last().Body
		assert.Equal(t, float64(30), body["totalAmount"])
		assert.Equal(t, "12 Le Loi", body["shippingAddress"])
		require.Len(t, body["items"], 1)
	})

	t.Run("Create validation", func(t *testing.T) {
		_, err := repo.Create(ctx, CreateParams{ShippingAddress: "x"})
		assert.ErrorIs(t, err, ErrEmptyCart)

		_, err = repo.Create(ctx, CreateParams{Items: []LineParams{{ProductID: "p1", Quantity: 1}}})
		assert.ErrorIs(t, err, ErrMissingAddress)
	})

	t.Run("Lists", func(t *testing.T) {
		srv.OK(http.MethodGet, "/orders/my-purchases", `[{"id":"o1"},{"id":"o2"}]`)
		srv.OK(http.MethodGet, "/orders/my-sales", `[{"id":"o3"}]`)

		bought, err := repo.MyPurchases(ctx)
		require.NoError(t, err)
		assert.Len(t, bought, 2)

		sold, err := repo.MySales(ctx)
		require.NoError(t, err)
		assert.Len(t, sold, 1)
	})

	t.Run("Get", func(t *testing.T) {
		srv.OK(http.MethodGet, "/orders/o1", `{"id":"o1","status":"shipping"}`)

		rec, err := repo.Get(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, StatusShipping, rec.Status)

		_, err = repo.Get(ctx, "")
		assert.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("Approve and Cancel", func(t *testing.T) {
		srv.OK(http.MethodPut, "/orders/o1/approve", `null`)
		srv.OK(http.MethodPut, "/orders/o1/cancel", `null`)

		require.NoError(t, repo.Approve(ctx, "o1"))
		assert.Equal(t, "/orders/o1/approve", srv.Last().Path)
		require.NoError(t, repo.Cancel(ctx, "o1"))
		assert.Equal(t, "/orders/o1/cancel", srv.Last().Path)

		assert.ErrorIs(t, repo.Approve(ctx, ""), ErrMissingID)
		assert.ErrorIs(t, repo.Cancel(ctx, ""), ErrMissingID)
	})

	t.Run("Notifications", func(t *testing.T) {
		srv.OK(http.MethodGet, "/orders/notifications", `[{"id":"n1","title":"Shipped","orderId":"o1"}]`)
		srv.OK(http.MethodPut, "/orders/notifications/n1/read", `null`)

		list, err := repo.Notifications(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "o1", list[0].OrderID)

		require.NoError(t, repo.MarkNotificationRead(ctx, "n1"))
		assert.Equal(t, http.MethodPut, srv.Last().Method)
		assert.ErrorIs(t, repo.MarkNotificationRead(ctx, ""), ErrMissingID)
	})
}

func TestToShadow(t *testing.T) {
	t.Run("Total falls back", func(t *testing.T) {
		assert.Equal(t, float64(7), ToShadow(Record{ID: "a", TotalAmount: 7, Total: 9}).Total)
		assert.Equal(t, float64(9), ToShadow(Record{ID: "a", Total: 9}).Total)
	})

	t.Run("Status defaults to pending", func(t *testing.T) {
		assert.Equal(t, StatusPending, ToShadow(Record{ID: "a"}).Status)
	})
}
