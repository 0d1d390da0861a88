package models

import "time"

// Note is a short text note owned by exactly one user.
type Note struct {
	// ID is the surrogate identifier assigned by the database.
	ID int64 `json:"id"`

	// UserID references the owner. It is set once on creation and never
	// serialized.
	UserID int64 `json:"-"`

	// Title is required and stored trimmed.
	Title string `json:"title"`

	// Body is optional free text, empty when omitted.
	Body string `json:"body"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation and strictly increases.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteInput carries the fields of a create or update request.
// A nil field was absent (or JSON null) in the request.
type NoteInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// IsEmpty reports whether neither field was provided.
func (in NoteInput) IsEmpty() bool {
	return in.Title == nil && in.Body == nil
}
