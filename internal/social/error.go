package social

import "errors"

var (
	ErrMissingUserID = errors.New("user id is required")
	ErrMissingShopID = errors.New("shop id is required")
)
