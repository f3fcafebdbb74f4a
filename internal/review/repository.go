package review

import (
	"context"
	"net/url"
	"strconv"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Review, error)
	ListByProduct(ctx context.Context, productID string, page, limit int) (*Page, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Review, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func validRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

func (r *repository) Create(ctx context.Context, params CreateParams) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateReview"),
	)

	if params.ProductID == "" {
		return nil, ErrMissingProductID
	}
	if !validRating(params.Rating) {
		return nil, ErrInvalidRating
	}

	var rv Review
	if _, err := r.client.Post(ctx, "/reviews/create", params, &rv); err != nil {
		log.Warn("create review failed", zap.String("product_id", params.ProductID), zap.Error(err))
		return nil, err
	}
	return &rv, nil
}

// ListByProduct fetches one page. page < 1 means the first page; limit < 1
// means DefaultLimit and anything above MaxLimit is capped.
func (r *repository) ListByProduct(ctx context.Context, productID string, page, limit int) (*Page, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var p Page
	if _, err := r.client.Get(ctx, api.Path("reviews", "product", productID), query, &p); err != nil {
		return nil, err
	}
	if p.Pagination.Page == 0 {
		p.Pagination.Page = page
	}
	if p.Pagination.Limit == 0 {
		p.Pagination.Limit = limit
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (*Review, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if params.Rating == 0 && params.Comment == "" {
		return nil, ErrNothingToUpdate
	}
	if params.Rating != 0 && !validRating(params.Rating) {
		return nil, ErrInvalidRating
	}

	var rv Review
	if _, err := r.client.Put(ctx, api.Path("reviews", id), params, &rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Delete(ctx, api.Path("reviews", id), nil)
	return err
}
