package shipper

import (
	"context"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	Earnings(ctx context.Context) (*Earnings, error)
	AvailableOrders(ctx context.Context) ([]Delivery, error)
	AcceptOrder(ctx context.Context, orderID string) (*Delivery, error)
	MyDeliveries(ctx context.Context) ([]Delivery, error)
	UpdateStatus(ctx context.Context, orderID string, status DeliveryStatus, note string) error
	CompleteDelivery(ctx context.Context, orderID string) error
	CancelDelivery(ctx context.Context, orderID, reason string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if _, err := r.client.Get(ctx, "/shipper/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Earnings(ctx context.Context) (*Earnings, error) {
	var e Earnings
	if _, err := r.client.Get(ctx, "/shipper/earnings", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) AvailableOrders(ctx context.Context) ([]Delivery, error) {
	var list []Delivery
	if _, err := r.client.Get(ctx, "/shipper/available-orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) AcceptOrder(ctx context.Context, orderID string) (*Delivery, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AcceptOrder"),
		zap.String("order_id", orderID),
	)

	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	var d Delivery
	if _, err := r.client.Post(ctx, api.Path("shipper", "accept-order", orderID), nil, &d); err != nil {
		log.Warn("accept order failed", zap.Error(err))
		return nil, err
	}

	log.Info("order accepted for delivery")
	return &d, nil
}

func (r *repository) MyDeliveries(ctx context.Context) ([]Delivery, error) {
	var list []Delivery
	if _, err := r.client.Get(ctx, "/shipper/my-deliveries", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status DeliveryStatus, note string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	if !status.Updatable() {
		return ErrUnknownStatus
	}

	_, err := r.client.Put(ctx, api.Path("shipper", "update-status", orderID), updateStatusBody{Status: status, Note: note}, nil)
	return err
}

func (r *repository) CompleteDelivery(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	_, err := r.client.Post(ctx, api.Path("shipper", "complete-delivery", orderID), nil, nil)
	return err
}

func (r *repository) CancelDelivery(ctx context.Context, orderID, reason string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	_, err := r.client.Post(ctx, api.Path("shipper", "cancel-delivery", orderID), cancelBody{Reason: reason}, nil)
	return err
}
