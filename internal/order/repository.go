package order

import (
	"context"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Record, error)
	MyPurchases(ctx context.Context) ([]Record, error)
	MySales(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Approve(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Notifications(ctx context.Context) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Create(ctx context.Context, params CreateParams) (*Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
	)

	if len(params.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if params.ShippingAddress == "" {
		return nil, ErrMissingAddress
	}

	var rec Record
	if _, err := r.client.Post(ctx, "/orders/create", params, &rec); err != nil {
		log.Error("create order failed", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", rec.ID),
		zap.Float64("total", params.TotalAmount),
	)
	return &rec, nil
}

func (r *repository) MyPurchases(ctx context.Context) ([]Record, error) {
	return r.list(ctx, "/orders/my-purchases")
}

func (r *repository) MySales(ctx context.Context) ([]Record, error) {
	return r.list(ctx, "/orders/my-sales")
}

func (r *repository) list(ctx context.Context, path string) ([]Record, error) {
	var records []Record
	if _, err := r.client.Get(ctx, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var rec Record
	if _, err := r.client.Get(ctx, api.Path("orders", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Approve(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Put(ctx, api.Path("orders", id, "approve"), nil, nil)
	return err
}

func (r *repository) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Put(ctx, api.Path("orders", id, "cancel"), nil, nil)
	return err
}

func (r *repository) Notifications(ctx context.Context) ([]Notification, error) {
	var list []Notification
	if _, err := r.client.Get(ctx, "/orders/notifications", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := r.client.Put(ctx, api.Path("orders", "notifications", id, "read"), nil, nil)
	return err
}
