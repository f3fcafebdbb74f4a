package payment

import (
	"context"
	"net/http"
	"time"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

const DefaultPollInterval = 3 * time.Second

type Service interface {
	Pay(ctx context.Context, params MomoParams) (*MomoPayment, error)
	Status(ctx context.Context, orderID string) (*Status, error)
	AwaitStatus(ctx context.Context, orderID string) (*Status, error)
}

type service struct {
	gateway  Gateway
	interval time.Duration
}

// NewService polls every interval in AwaitStatus; zero means DefaultPollInterval.
func NewService(gateway Gateway, interval time.Duration) Service {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &service{gateway: gateway, interval: interval}
}

func (s *service) Pay(ctx context.Context, params MomoParams) (*MomoPayment, error) {
	return s.gateway.CreateMomo(ctx, params)
}

func (s *service) Status(ctx context.Context, orderID string) (*Status, error) {
	return s.gateway.Status(ctx, orderID)
}

// AwaitStatus polls the payment until it reaches a terminal status. It
// returns the last status seen together with ctx's error when ctx ends first.
// Transport failures and 5xx answers are logged and retried on the next
// tick; any other backend error ends the wait and is returned as is.
func (s *service) AwaitStatus(ctx context.Context, orderID string) (*Status, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AwaitStatus"),
		zap.String("order_id", orderID),
	)

	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last *Status
	for {
		st, err := s.gateway.Status(ctx, orderID)
		switch {
		case permanent(err):
			return last, err
		case err != nil:
			log.Warn("payment status poll failed", zap.Error(err))
		case st.Terminal():
			log.Info("payment settled", zap.String("status", st.Status))
			return st, nil
		default:
			last = st
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}

func permanent(err error) bool {
	code := api.StatusCode(err)
	return code > 0 && code < http.StatusInternalServerError
}
