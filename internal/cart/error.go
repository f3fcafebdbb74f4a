package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity  = errors.New("invalid cart quantity")
	ErrMissingProductID = errors.New("product id is required")
	ErrMissingItemID    = errors.New("cart item id is required")
	ErrSizeRequired     = errors.New("this product needs a size")
	ErrUnknownSize      = errors.New("size not offered for this product")

	// -- Resource State --
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
