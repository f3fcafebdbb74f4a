package order

import (
	"context"
	"errors"
	"time"

	"marketplace-client/internal/cart"
	"marketplace-client/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	LoadPurchases(ctx context.Context) ([]Order, error)
	Approve(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Store() *Store
}

type service struct {
	repo   Repository
	orders *Store
	cart   *cart.Store
	now    func() time.Time
}

func NewService(repo Repository, orders *Store, cartStore *cart.Store) Service {
	return &service{
		repo:   repo,
		orders: orders,
		cart:   cartStore,
		now:    time.Now,
	}
}

func (s *service) Store() *Store {
	return s.orders
}

// Checkout places an order for the current cart, records a shadow copy and
// empties the cart. The total is the cart's own total over the same snapshot.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := cart.Total(items)

	rec, err := s.repo.Create(ctx, CreateParams{
		Items:           lineParams(items),
		TotalAmount:     total,
		ShippingAddress: params.ShippingAddress,
		PaymentMethod:   params.PaymentMethod,
		Note:            params.Note,
	})
	if err != nil {
		return nil, err
	}

	shadow := ToShadow(*rec)
	if shadow.ID == "" {
		shadow.ID = uuid.NewString()
	}
	if shadow.Date.IsZero() {
		shadow.Date = s.now()
	}
	if len(shadow.Items) == 0 {
		shadow.Items = items
	}
	shadow.Total = total

	if err := s.orders.Add(shadow); err != nil {
		return nil, err
	}
	s.cart.Clear()

	log.Info("checkout complete",
		zap.String("order_id", shadow.ID),
		zap.Int("lines", len(items)),
	)
	return &shadow, nil
}

func (s *service) LoadPurchases(ctx context.Context) ([]Order, error) {
	records, err := s.repo.MyPurchases(ctx)
	if err != nil {
		return nil, err
	}
	s.orders.Replace(ToShadows(records))
	return s.orders.List(), nil
}

func (s *service) Approve(ctx context.Context, id string) error {
	if err := s.repo.Approve(ctx, id); err != nil {
		return err
	}
	return s.shadowStatus(id, StatusConfirmed)
}

func (s *service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}
	return s.shadowStatus(id, StatusCancelled)
}

// shadowStatus updates the local copy when there is one. Sellers approve
// orders they hold no shadow for.
func (s *service) shadowStatus(id string, status Status) error {
	err := s.orders.UpdateStatus(id, status)
	if errors.Is(err, ErrOrderNotFound) {
		return nil
	}
	return err
}
