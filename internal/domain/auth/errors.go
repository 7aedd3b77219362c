package auth

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTokenTooShort = errors.New("token must be at least 16 characters")
)
