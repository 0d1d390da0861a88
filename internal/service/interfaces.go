package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-note-keeper/internal/service AuthService,NoteService,AppInfoService,HealthService

// AuthService covers accounts and login sessions.
type AuthService interface {
	// Register creates an account. The email is normalized (trimmed,
	// lowercased) before it is stored.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Login verifies credentials and returns the matching account.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	// CurrentUser returns the account behind an authenticated principal.
	CurrentUser(ctx context.Context, principal models.Principal) (models.User, error)

	// CreateSession stores a new server-side session for user and returns the
	// signed token that identifies it.
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	// ResolveSession turns a token into a principal. It fails with
	// ErrInvalidSession when the token does not verify or the session is gone.
	ResolveSession(ctx context.Context, tokenString string) (models.Principal, error)
	// Logout ends the principal's session. Anonymous principals are a no-op.
	Logout(ctx context.Context, principal models.Principal) error
}

// NoteService manages notes on behalf of an explicit principal. Every method
// fails with ErrAuthenticationRequired for an anonymous principal.
type NoteService interface {
	List(ctx context.Context, principal models.Principal, page models.PageRequest) (models.NotePage, error)
	Create(ctx context.Context, principal models.Principal, input models.NoteInput) (models.Note, error)
	Get(ctx context.Context, principal models.Principal, noteID int64) (models.Note, error)
	Update(ctx context.Context, principal models.Principal, noteID int64, input models.NoteInput) (models.Note, error)
	Delete(ctx context.Context, principal models.Principal, noteID int64) error
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing storage answers.
type HealthService interface {
	CheckHealth(ctx context.Context) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
