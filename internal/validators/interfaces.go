// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input of the notes server before it
// reaches the services.
//
// Two validators are provided, both backed by go-playground/validator:
//   - [CredentialsValidator] for register and login bodies (email format and
//     length, password presence and bcrypt length limit, confirmation match);
//   - [NoteValidator] for note create and update bodies (trimmed title
//     presence and length, at least one field on update).
//
// Each check is addressed by a Field* name, so a caller can run only the
// rules that apply to its operation.
package validators

import "context"

// Validator validates a value, optionally restricted to the named Field*
// checks. Without fields every check of the validator runs.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
