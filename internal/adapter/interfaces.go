// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-note-keeper HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides request building,
// the session cookie and response decoding from callers such as the
// healthcheck command. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] instead of inspecting
// status codes (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ServerAdapter defines communication with a go-note-keeper server.
// Implementations keep the session cookie issued by Register or Login and
// send it with every later call.
type ServerAdapter interface {
	// Health reports nil when the server and its database answer.
	Health(ctx context.Context) error

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// Register creates an account and starts a session for it.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login starts a session for an existing account.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout ends the current session. It succeeds when no session is held.
	Logout(ctx context.Context) error

	// Me returns the account of the current session, or [ErrUnauthorized].
	Me(ctx context.Context) (models.User, error)

	// CheckSession returns the account of the current session, or nil when
	// the client is anonymous.
	CheckSession(ctx context.Context) (*models.User, error)

	// ListNotes returns one page of the caller's notes.
	ListNotes(ctx context.Context, page models.PageRequest) (models.NotePage, error)

	// CreateNote stores a new note owned by the caller.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)

	// GetNote returns one of the caller's notes.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote applies the non-nil fields of input to the note.
	UpdateNote(ctx context.Context, noteID int64, input models.NoteInput) (models.Note, error)

	// DeleteNote removes the note.
	DeleteNote(ctx context.Context, noteID int64) error
}
