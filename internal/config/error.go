package config

import "errors"

var (
	ErrMissingBaseURL = errors.New("API_BASE_URL is not set")
	ErrMissingDBHost  = errors.New("DB_HOST is not set")
)
