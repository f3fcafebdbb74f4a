package wishlist

import (
	"context"

	"marketplace-client/internal/api"
	"marketplace-client/internal/product"
)

type Repository interface {
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
	List(ctx context.Context) ([]product.Product, error)
	Check(ctx context.Context, productID string) (bool, error)
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

type addBody struct {
	ProductID string `json:"productId"`
}

type checkResult struct {
	InWishlist bool `json:"inWishlist"`
}

func (r *repository) Add(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrMissingProductID
	}
	_, err := r.client.Post(ctx, "/wishlist", addBody{ProductID: productID}, nil)
	return err
}

func (r *repository) Remove(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrMissingProductID
	}
	_, err := r.client.Delete(ctx, api.Path("wishlist", productID), nil)
	return err
}

func (r *repository) List(ctx context.Context) ([]product.Product, error) {
	var items []product.Product
	if _, err := r.client.Get(ctx, "/wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Check(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, ErrMissingProductID
	}
	var res checkResult
	if _, err := r.client.Get(ctx, api.Path("wishlist", "check", productID), nil, &res); err != nil {
		return false, err
	}
	return res.InWishlist, nil
}
