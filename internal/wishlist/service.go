package wishlist

import (
	"context"

	"marketplace-client/internal/product"
)

type Service interface {
	Load(ctx context.Context) ([]product.Product, error)
	Toggle(ctx context.Context, p product.Product) (bool, error)
	IsFavorite(ctx context.Context, productID string) (bool, error)
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

func (s *service) Load(ctx context.Context) ([]product.Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Replace(items)
	return s.store.Items(), nil
}

// Toggle adds or removes p on the backend first, then mirrors it locally.
func (s *service) Toggle(ctx context.Context, p product.Product) (bool, error) {
	if p.ID == "" {
		return false, ErrMissingProductID
	}

	if s.store.Contains(p.ID) {
		if err := s.repo.Remove(ctx, p.ID); err != nil {
			return true, err
		}
		s.store.Remove(p.ID)
		return false, nil
	}

	if err := s.repo.Add(ctx, p.ID); err != nil {
		return false, err
	}
	return true, s.store.Add(p)
}

// IsFavorite answers from the local set when possible and asks the backend
// otherwise.
func (s *service) IsFavorite(ctx context.Context, productID string) (bool, error) {
	if s.store.Contains(productID) {
		return true, nil
	}
	return s.repo.Check(ctx, productID)
}
