package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ── AuthValidationService ────────────────────────────────────────────────────

func TestAuthValidationService_Register(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
		wantErr     error
	}{
		{name: "missing email", credentials: models.Credentials{Password: "p"}, wantErr: validators.ErrEmailRequired},
		{name: "blank email", credentials: models.Credentials{Email: "   ", Password: "p"}, wantErr: validators.ErrEmailRequired},
		{name: "invalid email", credentials: models.Credentials{Email: "nope", Password: "p"}, wantErr: validators.ErrInvalidEmail},
		{name: "missing password", credentials: models.Credentials{Email: "a@b.co"}, wantErr: validators.ErrPasswordRequired},
		{
			name:        "confirmation mismatch",
			credentials: models.Credentials{Email: "a@b.co", Password: "p", PasswordConfirmation: strPtr("q")},
			wantErr:     validators.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockAuthService(ctrl)
			svc := NewAuthValidationService().Wrap(inner)

			_, err := svc.Register(context.Background(), tt.credentials)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthValidationService_Register_PassesNormalizedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	inner.EXPECT().Register(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "p"}).
		Return(models.User{UserID: 1, Email: "alice@example.com"}, nil)

	user, err := svc.Register(context.Background(), models.Credentials{Email: " ALICE@example.com ", Password: "p"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthValidationService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.Credentials{Password: "p"})
	assert.ErrorIs(t, err, validators.ErrEmailRequired)

	_, err = svc.Login(ctx, models.Credentials{Email: "a@b.co"})
	assert.ErrorIs(t, err, validators.ErrPasswordRequired)

	// format is not checked on login; unknown addresses are just bad credentials
	inner.EXPECT().Login(ctx, models.Credentials{Email: "not-an-email", Password: "p"}).Return(models.User{}, ErrInvalidCredentials)
	_, err = svc.Login(ctx, models.Credentials{Email: "Not-An-Email", Password: "p"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthValidationService_Sessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.ResolveSession(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.CurrentUser(ctx, models.Principal{})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	inner.EXPECT().ResolveSession(ctx, "tok").Return(owner, nil)
	principal, err := svc.ResolveSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, owner, principal)

	inner.EXPECT().CreateSession(ctx, models.User{UserID: 1}).Return(models.Token{SessionID: "s"}, nil)
	token, err := svc.CreateSession(ctx, models.User{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "s", token.SessionID)

	inner.EXPECT().Logout(ctx, owner).Return(nil)
	assert.NoError(t, svc.Logout(ctx, owner))
}

// ── NoteValidationService ────────────────────────────────────────────────────

func TestNoteValidationService_AnonymousRejectedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockNoteService(ctrl)
	svc := NewNoteValidationService().Wrap(inner)
	ctx := context.Background()
	anon := models.Principal{}

	_, err := svc.List(ctx, anon, models.PageRequest{})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	// invalid input still reports authentication first
	_, err = svc.Create(ctx, anon, models.NoteInput{})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = svc.Get(ctx, anon, -1)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = svc.Update(ctx, anon, 1, models.NoteInput{})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	assert.ErrorIs(t, svc.Delete(ctx, anon, 1), ErrAuthenticationRequired)
}

func TestNoteValidationService_NonPositiveIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockNoteService(ctrl)
	svc := NewNoteValidationService().Wrap(inner)
	ctx := context.Background()

	for _, id := range []int64{0, -5} {
		_, err := svc.Get(ctx, owner, id)
		assert.ErrorIs(t, err, ErrNoteNotFound)

		_, err = svc.Update(ctx, owner, id, models.NoteInput{Body: strPtr("x")})
		assert.ErrorIs(t, err, ErrNoteNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, owner, id), ErrNoteNotFound)
	}
}

func TestNoteValidationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   models.NoteInput
		wantErr error
	}{
		{name: "missing title", input: models.NoteInput{Body: strPtr("b")}, wantErr: validators.ErrTitleRequired},
		{name: "blank title", input: models.NoteInput{Title: strPtr(" \t ")}, wantErr: validators.ErrTitleRequired},
		{name: "title too long", input: models.NoteInput{Title: strPtr(strings.Repeat("é", 201))}, wantErr: validators.ErrTitleTooLong},
		{name: "ok", input: models.NoteInput{Title: strPtr(strings.Repeat("é", 200))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockNoteService(ctrl)
			svc := NewNoteValidationService().Wrap(inner)

			if tt.wantErr == nil {
				inner.EXPECT().Create(gomock.Any(), owner, tt.input).Return(models.Note{ID: 1}, nil)
			}

			_, err := svc.Create(context.Background(), owner, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteValidationService_Update(t *testing.T) {
	tests := []struct {
		name    string
		input   models.NoteInput
		wantErr error
	}{
		{name: "no fields", input: models.NoteInput{}, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "blank title", input: models.NoteInput{Title: strPtr("  ")}, wantErr: validators.ErrTitleRequired},
		{name: "body only", input: models.NoteInput{Body: strPtr("")}},
		{name: "title only", input: models.NoteInput{Title: strPtr("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockNoteService(ctrl)
			svc := NewNoteValidationService().Wrap(inner)

			if tt.wantErr == nil {
				inner.EXPECT().Update(gomock.Any(), owner, int64(3), tt.input).Return(models.Note{ID: 3}, nil)
			}

			_, err := svc.Update(context.Background(), owner, 3, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteValidationService_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockNoteService(ctrl)
	svc := NewNoteValidationService().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().List(ctx, owner, models.PageRequest{Page: 2}).Return(models.NotePage{}, nil)
	inner.EXPECT().Get(ctx, owner, int64(3)).Return(models.Note{ID: 3}, nil)
	inner.EXPECT().Delete(ctx, owner, int64(3)).Return(nil)

	_, err := svc.List(ctx, owner, models.PageRequest{Page: 2})
	require.NoError(t, err)
	note, err := svc.Get(ctx, owner, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), note.ID)
	require.NoError(t, svc.Delete(ctx, owner, 3))
}
