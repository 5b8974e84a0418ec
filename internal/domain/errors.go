package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already in use")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDecode            = errors.New("image could not be decoded")

	// ErrPartialFailure marks a compound operation whose first write committed
	// but whose second leg did not. Nothing is rolled back automatically; the
	// caller decides whether to retry the remaining leg.
	ErrPartialFailure = errors.New("partial failure")
)
