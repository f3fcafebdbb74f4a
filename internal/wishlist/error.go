package wishlist

import "errors"

var ErrMissingProductID = errors.New("product id is required")
