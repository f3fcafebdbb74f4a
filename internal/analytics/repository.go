package analytics

import (
	"context"
	"net/url"

	"marketplace-client/internal/api"
)

type Repository interface {
	Seller(ctx context.Context, period Period) (*Seller, error)
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

// Seller fetches the caller's shop analytics. An empty period means week.
func (r *repository) Seller(ctx context.Context, period Period) (*Seller, error) {
	if period == "" {
		period = PeriodWeek
	}
	if !period.Valid() {
		return nil, ErrUnknownPeriod
	}

	query := url.Values{}
	query.Set("period", string(period))

	var s Seller
	if _, err := r.client.Get(ctx, "/analytics/seller", query, &s); err != nil {
		return nil, err
	}
	if s.Period == "" {
		s.Period = period
	}
	return &s, nil
}
