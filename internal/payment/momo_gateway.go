package payment

import (
	"context"
	"strings"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type momoGateway struct {
	client *api.Client
}

func NewMomoGateway(client *api.Client) Gateway {
	return &momoGateway{client: client}
}

func (g *momoGateway) CreateMomo(ctx context.Context, params MomoParams) (*MomoPayment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("method", "CreateMomo"),
		zap.String("order_id", params.OrderID),
		zap.Float64("amount", params.Amount),
	)

	if params.OrderID == "" {
		return nil, ErrMissingOrderID
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var p MomoPayment
	if _, err := g.client.Post(ctx, "/payment/momo/create", params, &p); err != nil {
		log.Error("momo payment request failed", zap.Error(err))
		return nil, err
	}
	if p.PayURL == "" && p.Deeplink == "" {
		log.Error("momo payment has no pay url")
		return nil, ErrNoPayURL
	}
	if p.OrderID == "" {
		p.OrderID = params.OrderID
	}

	log.Info("momo payment created", zap.String("request_id", p.RequestID))
	return &p, nil
}

func (g *momoGateway) Status(ctx context.Context, orderID string) (*Status, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	var s Status
	if _, err := g.client.Get(ctx, api.Path("payment", "status", orderID), nil, &s); err != nil {
		return nil, err
	}
	s.Status = strings.ToLower(s.Status)
	if s.OrderID == "" {
		s.OrderID = orderID
	}
	return &s, nil
}
