package social

import (
	"context"

	"marketplace-client/internal/api"
)

type Repository interface {
	Follow(ctx context.Context, userID string) (*Counts, error)
	Unfollow(ctx context.Context, userID string) (*Counts, error)
	LikeShop(ctx context.Context, shopID string) (*Counts, error)
	UnlikeShop(ctx context.Context, shopID string) (*Counts, error)
	FeaturedShops(ctx context.Context) ([]FeaturedShop, error)
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Follow(ctx context.Context, userID string) (*Counts, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	return r.post(ctx, api.Path("users", "follow", userID))
}

func (r *repository) Unfollow(ctx context.Context, userID string) (*Counts, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	return r.post(ctx, api.Path("users", "unfollow", userID))
}

func (r *repository) LikeShop(ctx context.Context, shopID string) (*Counts, error) {
	if shopID == "" {
		return nil, ErrMissingShopID
	}
	return r.post(ctx, api.Path("users", "like-shop", shopID))
}

func (r *repository) UnlikeShop(ctx context.Context, shopID string) (*Counts, error) {
	if shopID == "" {
		return nil, ErrMissingShopID
	}
	return r.post(ctx, api.Path("users", "unlike-shop", shopID))
}

func (r *repository) post(ctx context.Context, path string) (*Counts, error) {
	var c Counts
	if _, err := r.client.Post(ctx, path, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FeaturedShops(ctx context.Context) ([]FeaturedShop, error) {
	var shops []FeaturedShop
	if _, err := r.client.Get(ctx, "/users/featured-shops", nil, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}
