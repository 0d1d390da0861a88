// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level failures. Their messages are returned to the client.
var (
	// ErrIntegrityCheckFailed is returned when a request carries a HashSHA256
	// header that does not match the HMAC of its body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrInvalidGzipBody is returned when a request declares gzip content
	// encoding but its body cannot be decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip body")

	// ErrRouteNotFound is returned for unknown paths and for methods a path
	// does not support.
	ErrRouteNotFound = errors.New("not found")

	// ErrServiceUnavailable is reported when storage cannot be reached.
	ErrServiceUnavailable = errors.New("service unavailable")

	errInternal = errors.New("internal server error")
)
