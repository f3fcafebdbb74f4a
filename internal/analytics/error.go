package analytics

import "errors"

var ErrUnknownPeriod = errors.New("period must be day, week or month")
