package payment

import "context"

// Gateway is the backend's payment surface.
type Gateway interface {
	CreateMomo(ctx context.Context, params MomoParams) (*MomoPayment, error)
	Status(ctx context.Context, orderID string) (*Status, error)
}
