package product

import (
	"context"
	"net/url"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	Featured(ctx context.Context) ([]Product, error)
	Mine(ctx context.Context) ([]Product, error)
	ByShop(ctx context.Context, shopID string) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input Input) (*Product, error)
	Update(ctx context.Context, id string, input Input) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var products []Product
	if _, err := r.client.Get(ctx, "/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Featured(ctx context.Context) ([]Product, error) {
	var products []Product
	if _, err := r.client.Get(ctx, "/products/featured", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Mine(ctx context.Context) ([]Product, error) {
	var products []Product
	if _, err := r.client.Get(ctx, "/products/my-products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) ByShop(ctx context.Context, shopID string) ([]Product, error) {
	if shopID == "" {
		return nil, ErrMissingShopID
	}

	var products []Product
	if _, err := r.client.Get(ctx, api.Path("products", "shop", shopID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var p Product
	if _, err := r.client.Get(ctx, api.Path("products", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, input Input) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
	)

	if input.Name == "" {
		return nil, ErrInvalidName
	}
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	var p Product
	if _, err := r.client.Post(ctx, "/products/create", input, &p); err != nil {
		log.Warn("create product failed", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id string, input Input) (*Product, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if input.empty() {
		return nil, ErrNothingToUpdate
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	var p Product
	if _, err := r.client.Put(ctx, api.Path("products", id), input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Delete(ctx, api.Path("products", id), nil)
	return err
}
