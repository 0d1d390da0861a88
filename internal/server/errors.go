// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler is returned by NewServer when the notes API handler
	// was not built.
	errNoHTTPHandler = errors.New("http handler is not configured")

	// errNoHTTPAddress is returned by NewServer when there is no address to
	// listen on.
	errNoHTTPAddress = errors.New("http address is not configured")
)
