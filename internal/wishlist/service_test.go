package wishlist

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"marketplace-client/internal/api/apitest"
	"marketplace-client/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	srv := apitest.New(t)
	repo := NewRepository(srv.API)
	ctx := context.Background()

	srv.OK(http.MethodPost, "/wishlist", `null`)
	srv.OK(http.MethodDelete, "/wishlist/p1", `null`)
	srv.OK(http.MethodGet, "/wishlist", `[{"id":"p1","name":"Lamp"}]`)
	srv.OK(http.MethodGet, "/wishlist/check/p1", `{"inWishlist":true}`)

	require.NoError(t, repo.Add(ctx, "p1"))
	assert.Equal(t, "p1", srv.Last().Body["productId"])

	require.NoError(t, repo.Remove(ctx, "p1"))
	assert.Equal(t, "/wishlist/p1", srv.Last().Path)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	in, err := repo.Check(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, in)

	assert.ErrorIs(t, repo.Add(ctx, ""), ErrMissingProductID)
	assert.ErrorIs(t, repo.Remove(ctx, ""), ErrMissingProductID)
	_, err = repo.Check(ctx, "")
	assert.ErrorIs(t, err, ErrMissingProductID)
}

func TestService_Toggle(t *testing.T) {
	srv := apitest.New(t)
	svc := NewService(NewRepository(srv.API), NewStore())
	ctx := context.Background()
	lamp := product.Product{ID: "p1", Name: "Lamp"}

	t.Run("Add then remove", func(t *testing.T) {
		srv.OK(http.MethodPost, "/wishlist", `null`)
		srv.OK(http.MethodDelete, "/wishlist/p1", `null`)

		on, err := svc.Toggle(ctx, lamp)
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, svc.Store().Contains("p1"))

		on, err = svc.Toggle(ctx, lamp)
		require.NoError(t, err)
		assert.False(t, on)
		assert.False(t, svc.Store().Contains("p1"))
	})

	t.Run("Backend failure keeps state", func(t *testing.T) {
		srv.Reply(http.MethodPost, "/wishlist", http.StatusInternalServerError, `{"success":false}`)

		on, err := svc.Toggle(ctx, lamp)
		assert.Error(t, err)
		assert.False(t, on)
		assert.False(t, svc.Store().Contains("p1"))
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := svc.Toggle(ctx, product.Product{})
		assert.ErrorIs(t, err, ErrMissingProductID)
	})
}

func TestService_LoadAndIsFavorite(t *testing.T) {
	srv := apitest.New(t)
	svc := NewService(NewRepository(srv.API), NewStore())
	ctx := context.Background()

	srv.OK(http.MethodGet, "/wishlist", `[{"id":"p1"},{"id":"p2"}]`)
	srv.OK(http.MethodGet, "/wishlist/check/p3", `{"inWishlist":false}`)

	items, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	calls := len(srv.Calls())
	fav, err := svc.IsFavorite(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.Len(t, srv.Calls(), calls)

	fav, err = svc.IsFavorite(ctx, "p3")
	require.NoError(t, err)
	assert.False(t, fav)

	srv.Reply(http.MethodGet, "/wishlist", http.StatusUnauthorized, `{"success":false,"message":"login"}`)
	_, err = svc.Load(ctx)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingProductID))
	assert.Equal(t, 2, svc.Store().Len())
}
