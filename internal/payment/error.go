package payment

import "errors"

var (
	ErrMissingOrderID = errors.New("order id is required")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrNoPayURL       = errors.New("payment created without a pay url")
)
