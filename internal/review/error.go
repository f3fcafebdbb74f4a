package review

import "errors"

var (
	ErrMissingID        = errors.New("review id is required")
	ErrMissingProductID = errors.New("product id is required")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrNothingToUpdate  = errors.New("no review field to update")
)
