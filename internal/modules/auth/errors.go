package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRequest     = errors.New("invalid registration request")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrStoreUnavailable   = errors.New("user store unavailable")
)
