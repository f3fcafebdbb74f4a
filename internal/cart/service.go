package cart

import (
	"context"

	"marketplace-client/internal/logger"
	"marketplace-client/internal/product"

	"go.uber.org/zap"
)

// Service keeps the local Store in step with the backend cart. Every
// mutation goes to the backend first; the store only changes on success.
type Service interface {
	Load(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, p product.Product, quantity int, size string) error
	UpdateQuantity(ctx context.Context, productID, size string, quantity int) error
	Remove(ctx context.Context, productID, size string) error
	Clear(ctx context.Context) error
	Store() *Store
}

type service struct {
	repo  Repository
	store *Store
}

func NewService(repo Repository, store *Store) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Store() *Store {
	return s.store
}

// Load replaces the local cart with the backend's.
func (s *service) Load(ctx context.Context) ([]Item, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Replace(c.Items)
	return s.store.Items(), nil
}

func (s *service) Add(ctx context.Context, p product.Product, quantity int, size string) error {
	if p.ID == "" {
		return ErrMissingProductID
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if len(p.Sizes) > 0 && size == "" {
		return ErrSizeRequired
	}
	if !p.HasSize(size) {
		return ErrUnknownSize
	}

	existing, _ := s.store.Get(p.ID, size)
	if p.Stock > 0 && existing.Quantity+quantity > p.Stock {
		return ErrInsufficientStock
	}

	c, err := s.repo.Add(ctx, AddParams{ProductID: p.ID, Quantity: quantity, Size: size})
	if err != nil {
		return err
	}

	if c != nil && len(c.Items) > 0 {
		s.store.Replace(c.Items)
		return nil
	}
	return s.store.Add(Item{Product: p, Quantity: quantity, Size: size})
}

func (s *service) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID, size)
	}

	item, ok := s.store.Get(productID, size)
	if !ok {
		return ErrCartItemNotFound
	}
	if item.Product.Stock > 0 && quantity > item.Product.Stock {
		return ErrInsufficientStock
	}

	if item.ID != "" {
		c, err := s.repo.Update(ctx, item.ID, quantity)
		if err != nil {
			return err
		}
		if c != nil && len(c.Items) > 0 {
			s.store.Replace(c.Items)
			return nil
		}
	}
	return s.store.UpdateQuantity(productID, size, quantity)
}

func (s *service) Remove(ctx context.Context, productID, size string) error {
	item, ok := s.store.Get(productID, size)
	if !ok {
		return ErrCartItemNotFound
	}

	if item.ID != "" {
		c, err := s.repo.Remove(ctx, item.ID)
		if err != nil {
			return err
		}
		if c != nil && len(c.Items) > 0 {
			s.store.Replace(c.Items)
			return nil
		}
	}
	s.store.Remove(productID, size)
	return nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Warn("clear cart failed", zap.Error(err))
		return err
	}
	s.store.Clear()
	return nil
}
