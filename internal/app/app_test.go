package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-client/internal/api"
	"marketplace-client/internal/cart"
	"marketplace-client/internal/config"
	"marketplace-client/internal/order"
	"marketplace-client/internal/product"
	"marketplace-client/internal/storage"
	"marketplace-client/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, h http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a := NewWithStorage(&config.Config{APIBaseURL: srv.URL}, storage.NewMemory())
	t.Cleanup(func() { a.Close() })
	return a
}

func TestApp_UnauthorizedClearsLocalState(t *testing.T) {
	var gotAuth string
	a := newApp(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	})
	ctx := context.Background()

	require.NoError(t, a.Session.Save(ctx, "tok", user.User{ID: "u1", Name: "Lan"}))
	require.NoError(t, a.Cart.Store().Add(cart.Item{Product: product.Product{ID: "p1", Price: 10}, Quantity: 1}))
	require.NoError(t, a.Wishlist.Store().Add(product.Product{ID: "p2"}))
	require.NoError(t, a.Orders.Store().Add(order.Order{ID: "o1"}))

	_, err := a.Cart.Load(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, "Bearer tok", gotAuth)

	_, ok := a.Session.User(ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, a.Cart.Store().Count())
	assert.Equal(t, 0, a.Wishlist.Store().Len())
	assert.Equal(t, 0, a.Orders.Store().Len())
}

func TestApp_LogoutClearsLocalState(t *testing.T) {
	a := newApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"token":"tok","user":{"id":"u1","name":"Lan"}}`))
	})
	ctx := context.Background()

	_, err := a.Users.Login(ctx, "lan@x.vn", "secret1")
	require.NoError(t, err)
	require.NoError(t, a.Cart.Store().Add(cart.Item{Product: product.Product{ID: "p1"}, Quantity: 2}))

	require.NoError(t, a.Users.Logout(ctx))
	assert.Equal(t, 0, a.Cart.Store().Count())

	tok, err := a.Session.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestApp_Close(t *testing.T) {
	a := NewWithStorage(&config.Config{APIBaseURL: "http://localhost"}, storage.NewMemory())
	assert.NoError(t, a.Close())

	// After Close the session no longer drives the stores.
	require.NoError(t, a.Cart.Store().Add(cart.Item{Product: product.Product{ID: "p1"}, Quantity: 1}))
	require.NoError(t, a.Session.Save(context.Background(), "tok", user.User{ID: "u1"}))
	require.NoError(t, a.Session.Clear(context.Background()))
	assert.Equal(t, 1, a.Cart.Store().Count())
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.Config{APIBaseURL: "http://localhost", StorageDriver: "floppy"})
	assert.ErrorIs(t, err, storage.ErrUnknownDriver)
}
