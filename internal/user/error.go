package user

import "errors"

var (
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
	ErrInvalidName     = errors.New("name is required")
	ErrInvalidRole     = errors.New("unknown role")
	ErrNothingToUpdate = errors.New("no profile field to update")
	ErrMissingToken    = errors.New("server did not return a token")
	ErrNotLoggedIn     = errors.New("not logged in")
)
