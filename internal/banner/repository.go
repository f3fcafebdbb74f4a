package banner

import (
	"context"
	"strings"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Active(ctx context.Context) ([]Banner, error)
	All(ctx context.Context) ([]Banner, error)
	Mine(ctx context.Context) ([]Banner, error)
	Pending(ctx context.Context) ([]Banner, error)
	Create(ctx context.Context, params CreateParams) (*Banner, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, reason string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

// Active lists the banners currently shown on the home feed.
func (r *repository) Active(ctx context.Context) ([]Banner, error) {
	return r.list(ctx, "/banners")
}

// All is the admin view of every banner.
func (r *repository) All(ctx context.Context) ([]Banner, error) {
	return r.list(ctx, "/banners/all")
}

func (r *repository) Mine(ctx context.Context) ([]Banner, error) {
	return r.list(ctx, "/banners/my")
}

func (r *repository) Pending(ctx context.Context) ([]Banner, error) {
	return r.list(ctx, "/banners/pending")
}

func (r *repository) list(ctx context.Context, path string) ([]Banner, error) {
	var banners []Banner
	if _, err := r.client.Get(ctx, path, nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *repository) Create(ctx context.Context, params CreateParams) (*Banner, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateBanner"),
	)

	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrMissingTitle
	}
	if params.ImageURL == "" {
		return nil, ErrMissingImage
	}
	if params.StartDate != nil && params.EndDate != nil && !params.EndDate.After(*params.StartDate) {
		return nil, ErrInvalidPeriod
	}

	var b Banner
	if _, err := r.client.Post(ctx, "/banners", params, &b); err != nil {
		log.Warn("create banner failed", zap.Error(err))
		return nil, err
	}

	log.Info("banner submitted for review", zap.String("banner_id", b.ID))
	return &b, nil
}

func (r *repository) Approve(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Put(ctx, api.Path("banners", id, "approve"), nil, nil)
	return err
}

func (r *repository) Reject(ctx context.Context, id, reason string) error {
	if id == "" {
		return ErrMissingID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	_, err := r.client.Put(ctx, api.Path("banners", id, "reject"), rejectBody{Reason: reason}, nil)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Delete(ctx, api.Path("banners", id), nil)
	return err
}
