package cart

import (
	"context"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

// Repository is the backend copy of the cart.
type Repository interface {
	Get(ctx context.Context) (*Cart, error)
	Add(ctx context.Context, params AddParams) (*Cart, error)
	Update(ctx context.Context, itemID string, quantity int) (*Cart, error)
	Remove(ctx context.Context, itemID string) (*Cart, error)
	Clear(ctx context.Context) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Get(ctx context.Context) (*Cart, error) {
	c := &Cart{}
	if _, err := r.client.Get(ctx, "/cart", nil, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) Add(ctx context.Context, params AddParams) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddToCart"),
		zap.String("product_id", params.ProductID),
		zap.Int("quantity", params.Quantity),
	)

	if params.ProductID == "" {
		return nil, ErrMissingProductID
	}
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	c := &Cart{}
	if _, err := r.client.Post(ctx, "/cart/add", params, c); err != nil {
		log.Warn("add to cart failed", zap.Error(err))
		return nil, err
	}

	log.Debug("added to cart")
	return c, nil
}

func (r *repository) Update(ctx context.Context, itemID string, quantity int) (*Cart, error) {
	if itemID == "" {
		return nil, ErrMissingItemID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	c := &Cart{}
	if _, err := r.client.Put(ctx, api.Path("cart", itemID), updateBody{Quantity: quantity}, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) Remove(ctx context.Context, itemID string) (*Cart, error) {
	if itemID == "" {
		return nil, ErrMissingItemID
	}

	c := &Cart{}
	if _, err := r.client.Delete(ctx, api.Path("cart", itemID), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) Clear(ctx context.Context) error {
	_, err := r.client.Delete(ctx, "/cart", nil)
	return err
}
