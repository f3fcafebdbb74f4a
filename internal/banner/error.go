package banner

import "errors"

var (
	ErrMissingID     = errors.New("banner id is required")
	ErrMissingTitle  = errors.New("banner title is required")
	ErrMissingImage  = errors.New("banner image is required")
	ErrInvalidPeriod = errors.New("banner must end after it starts")
	ErrMissingReason = errors.New("a reject reason is required")
)
