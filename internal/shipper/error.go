package shipper

import "errors"

var (
	ErrMissingOrderID = errors.New("order id is required")
	ErrUnknownStatus  = errors.New("unknown delivery status")
)
