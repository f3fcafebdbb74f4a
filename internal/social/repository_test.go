package social

import (
	"context"
	"net/http"
	"testing"

	"marketplace-client/internal/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_FollowAndLike(t *testing.T) {
	srv := apitest.New(t)
	repo := NewRepository(srv.API)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		call func(string) (*Counts, error)
	}{
		{"Follow", "/users/follow/s1", func(id string) (*Counts, error) { return repo.Follow(ctx, id) }},
		{"Unfollow", "/users/unfollow/s1", func(id string) (*Counts, error) { return repo.Unfollow(ctx, id) }},
		{"LikeShop", "/users/like-shop/s1", func(id string) (*Counts, error) { return repo.LikeShop(ctx, id) }},
		{"UnlikeShop", "/users/unlike-shop/s1", func(id string) (*Counts, error) { return repo.UnlikeShop(ctx, id) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv.OK(http.MethodPost, tt.path, `{"followers":4,"likes":9}`)

			c, err := tt.call("s1")
			require.NoError(t, err)
			assert.Equal(t, 4, c.Followers)
			assert.Equal(t, 9, c.Likes)
			assert.Equal(t, http.MethodPost, srv.Last().Method)
			assert.Equal(t, tt.path, srv.Last().Path)

			_, err = tt.call("")
			assert.Error(t, err)
		})
	}

	_, err := repo.Follow(ctx, "")
	assert.ErrorIs(t, err, ErrMissingUserID)
	_, err = repo.LikeShop(ctx, "")
	assert.ErrorIs(t, err, ErrMissingShopID)
}

func TestRepository_FeaturedShops(t *testing.T) {
	srv := apitest.New(t)
	repo := NewRepository(srv.API)

	srv.OK(http.MethodGet, "/users/featured-shops",
		`[{"id":"s1","name":"Lan Boutique","followers":120,"isFollowing":true},{"id":"s2","name":"Minh Shoes"}]`)

	shops, err := repo.FeaturedShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Lan Boutique", shops[0].Name)
	assert.Equal(t, 120, shops[0].Followers)
	assert.True(t, shops[0].IsFollowing)
}
