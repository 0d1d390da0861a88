package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

var demoNotes = []models.Note{
	{Title: "Welcome to go-note-keeper", Body: "Notes are private to the account that created them."},
	{Title: "Shopping list", Body: "Milk, eggs, coffee beans, rye bread."},
	{Title: "Meeting notes", Body: "Move the release to Thursday and ask ops about the new database host."},
	{Title: "Reading queue", Body: "The Go Programming Language, chapters 8 and 9."},
	{Title: "Ideas", Body: ""},
}

// seeder creates the demo account and its sample notes. Running it again
// leaves an already seeded database untouched.
type seeder struct {
	users      store.UserRepository
	notes      store.NoteRepository
	bcryptCost int
	now        func() time.Time
}

type seedResult struct {
	User         models.User
	UserCreated  bool
	NotesCreated int
}

func (s *seeder) seed(ctx context.Context) (seedResult, error) {
	user, created, err := s.ensureUser(ctx)
	if err != nil {
		return seedResult{}, err
	}

	result := seedResult{User: user, UserCreated: created}

	count, err := s.notes.CountNotes(ctx, user.UserID)
	if err != nil {
		return result, fmt.Errorf("error counting demo notes: %w", err)
	}
	if count > 0 {
		return result, nil
	}

	for i, note := range demoNotes {
		ts := s.now().UTC().Add(time.Duration(i) * time.Second).Truncate(time.Microsecond)
		note.UserID = user.UserID
		note.CreatedAt = ts
		note.UpdatedAt = ts
		if _, err = s.notes.CreateNote(ctx, note); err != nil {
			return result, fmt.Errorf("error creating demo note %q: %w", note.Title, err)
		}
		result.NotesCreated++
	}

	return result, nil
}

func (s *seeder) ensureUser(ctx context.Context) (models.User, bool, error) {
	user, err := s.users.FindUserByEmail(ctx, demoEmail)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, false, fmt.Errorf("error looking up demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), s.bcryptCost)
	if err != nil {
		return models.User{}, false, fmt.Errorf("error hashing demo password: %w", err)
	}

	user, err = s.users.CreateUser(ctx, models.User{
		Email:        demoEmail,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return models.User{}, false, fmt.Errorf("error creating demo user: %w", err)
	}
	return user, true, nil
}
