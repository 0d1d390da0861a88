package service

import "errors"

// Errors surfaced to API clients. Their messages are part of the HTTP
// contract.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailTaken             = errors.New("email already registered")
	ErrNoteNotFound           = errors.New("note not found")
	ErrForbidden              = errors.New("forbidden")
)

var (
	// ErrInvalidSession is returned by ResolveSession for tokens that do not
	// verify or whose server-side session no longer exists.
	ErrInvalidSession = errors.New("session is invalid or expired")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
