package product

import "errors"

var (
	ErrMissingID       = errors.New("product id is required")
	ErrMissingShopID   = errors.New("shop id is required")
	ErrInvalidName     = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must be greater than zero")
	ErrInvalidStock    = errors.New("product stock cannot be negative")
	ErrNothingToUpdate = errors.New("no product field to update")
)
