package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. Input is
// expected to be validated by NoteValidationService; this type applies
// ownership rules and timestamps.
type noteService struct {
	noteRepository store.NoteRepository

	// revealForeignNotes reports foreign notes as ErrForbidden instead of
	// ErrNoteNotFound.
	revealForeignNotes bool

	now    func() time.Time
	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, cfg config.App, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:     noteRepository,
		revealForeignNotes: cfg.RevealForeignNotes,
		now:                time.Now,
		logger:             logger,
	}
}

// List returns one page of the principal's notes. Out-of-range pages yield
// empty data with the meta still filled in.
func (s *noteService) List(ctx context.Context, principal models.Principal, page models.PageRequest) (models.NotePage, error) {
	page = page.Normalize()

	total, err := s.noteRepository.CountNotes(ctx, principal.UserID)
	if err != nil {
		return models.NotePage{}, fmt.Errorf("error counting notes: %w", err)
	}

	meta := models.NewPageMeta(page, total)

	// Compared by page number: the offset of a huge page does not fit in int.
	notes := make([]models.Note, 0)
	if page.Page <= meta.Pages {
		notes, err = s.noteRepository.ListNotes(ctx, principal.UserID, page)
		if err != nil {
			return models.NotePage{}, fmt.Errorf("error listing notes: %w", err)
		}
	}

	return models.NotePage{
		Data: notes,
		Meta: meta,
	}, nil
}

// Create stores a note owned by the principal. The title is trimmed and a
// missing body becomes empty.
func (s *noteService) Create(ctx context.Context, principal models.Principal, input models.NoteInput) (models.Note, error) {
	log := logger.FromContextOr(ctx, s.logger)

	now := timestamp(s.now())
	note := models.Note{
		UserID:    principal.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Title != nil {
		note.Title = strings.TrimSpace(*input.Title)
	}
	if input.Body != nil {
		note.Body = *input.Body
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Note{}, ErrAuthenticationRequired
	}
	if err != nil {
		log.Err(err).Str("func", "noteService.Create").Int64("user_id", principal.UserID).Msg("error creating note")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	return created, nil
}

// Get returns a note owned by the principal.
func (s *noteService) Get(ctx context.Context, principal models.Principal, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note: %w", err)
	}

	if err = s.checkOwner(ctx, principal, note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Update applies the provided fields. The ownership check and the write run
// in one transaction; updated_at always moves forward.
func (s *noteService) Update(ctx context.Context, principal models.Principal, noteID int64, input models.NoteInput) (models.Note, error) {
	log := logger.FromContextOr(ctx, s.logger)

	updated, err := s.noteRepository.UpdateNote(ctx, noteID, func(note models.Note) (models.Note, error) {
		if err := s.checkOwner(ctx, principal, note); err != nil {
			return models.Note{}, err
		}

		if input.Title != nil {
			note.Title = strings.TrimSpace(*input.Title)
		}
		if input.Body != nil {
			note.Body = *input.Body
		}
		note.UpdatedAt = nextUpdatedAt(timestamp(s.now()), note.UpdatedAt)

		return note, nil
	})
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if errors.Is(err, ErrNoteNotFound) || errors.Is(err, ErrForbidden) {
		return models.Note{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "noteService.Update").Int64("note_id", noteID).Msg("error updating note")
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return updated, nil
}

// Delete removes a note owned by the principal.
func (s *noteService) Delete(ctx context.Context, principal models.Principal, noteID int64) error {
	if _, err := s.Get(ctx, principal, noteID); err != nil {
		return err
	}

	err := s.noteRepository.DeleteNote(ctx, noteID, principal.UserID)
	if errors.Is(err, store.ErrNoteNotFound) {
		// deleted concurrently
		return ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}

func (s *noteService) checkOwner(ctx context.Context, principal models.Principal, note models.Note) error {
	if note.UserID == principal.UserID {
		return nil
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "noteService.checkOwner").
		Int64("note_id", note.ID).
		Int64("user_id", principal.UserID).
		Msg("access to foreign note")

	if s.revealForeignNotes {
		return ErrForbidden
	}
	return ErrNoteNotFound
}

// nextUpdatedAt keeps updated_at strictly increasing even when the clock
// has not advanced past the stored value.
func nextUpdatedAt(now, previous time.Time) time.Time {
	if floor := previous.Add(time.Microsecond); now.Before(floor) {
		return floor
	}
	return now
}
