package order

import "errors"

var (
	ErrMissingID      = errors.New("order id is required")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("shipping address is required")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUnknownStatus  = errors.New("unknown order status")
)
