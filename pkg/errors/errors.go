package ptable_errors

import "errors"

// Common errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTokenExpired    = errors.New("token has expired")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrMisconfigured   = errors.New("service not configured")
	ErrUpstream        = errors.New("upstream service error")
	ErrUpstreamTimeout = errors.New("upstream service timed out")
)
