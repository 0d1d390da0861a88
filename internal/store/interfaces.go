package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock github.com/MKhiriev/go-note-keeper/internal/store UserRepository,NoteRepository,SessionStorage

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the account and returns it with the assigned ID.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks an account up by its normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks an account up by its ID.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// GetNote returns the note regardless of its owner so that callers can
	// decide how to report foreign notes.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, page models.PageRequest) ([]models.Note, error)
	CountNotes(ctx context.Context, userID int64) (int, error)
	// UpdateNote loads the note, passes it to mutate and stores the result,
	// all inside one transaction. An error from mutate aborts the update and
	// is returned unchanged.
	UpdateNote(ctx context.Context, noteID int64, mutate func(note models.Note) (models.Note, error)) (models.Note, error)
	// DeleteNote removes the note only if it belongs to userID.
	DeleteNote(ctx context.Context, noteID, userID int64) error
}

// SessionStorage keeps the server-side half of login sessions.
type SessionStorage interface {
	// SaveSession stores the session until its ExpiresAt.
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] for unknown or expired IDs.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	// DeleteSession is idempotent.
	DeleteSession(ctx context.Context, sessionID string) error
	Close() error
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DBTX is the subset of methods shared by *sql.DB and *sql.Tx, so that query
// helpers can run either inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
