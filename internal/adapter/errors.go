package adapter

import "errors"

// Errors returned by [ServerAdapter] implementations for non-2xx responses.
// The server's own message is appended after the sentinel.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInternalServer     = errors.New("internal server error")
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponseHash is returned when a hash key is configured and the
	// HashSHA256 header of a response does not match its body.
	ErrInvalidResponseHash = errors.New("response hash mismatch")
)
