package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository]
// working on the "notes" table.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts note and returns it with the assigned ID. Timestamps are
// taken from note as given.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContextOr(ctx, n.logger)

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = n.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		if n.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.Note{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, n.classifyError(err))
	}

	return note, nil
}

// GetNote returns the note with the given ID or [ErrNoteNotFound].
func (n *noteRepository) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	return n.getNote(ctx, n.DB.DB, noteID)
}

func (n *noteRepository) getNote(ctx context.Context, q DBTX, noteID int64) (models.Note, error) {
	log := logger.FromContextOr(ctx, n.logger)

	query, args, err := buildSelectNoteQuery(n.builder, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.getNote").
			Int64("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, n.classifyError(err))
	}

	return note, nil
}

// ListNotes returns one page of the user's notes ordered by ascending ID.
// Pages past the end yield an empty, non-nil slice.
func (n *noteRepository) ListNotes(ctx context.Context, userID int64, page models.PageRequest) ([]models.Note, error) {
	log := logger.FromContextOr(ctx, n.logger)

	query, args, err := buildSelectNotesPageQuery(n.builder, userID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, n.classifyError(err))
	}
	defer rows.Close()

	notes := make([]models.Note, 0, page.PerPage)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, n.classifyError(rowsErr))
	}

	return notes, nil
}

// CountNotes returns the number of notes owned by userID.
func (n *noteRepository) CountNotes(ctx context.Context, userID int64) (int, error) {
	query, args, err := buildCountNotesQuery(n.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = n.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContextOr(ctx, n.logger).Err(err).
			Str("func", "noteRepository.CountNotes").
			Int64("user_id", userID).
			Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, n.classifyError(err))
	}

	return total, nil
}

// UpdateNote implements [NoteRepository.UpdateNote].
func (n *noteRepository) UpdateNote(ctx context.Context, noteID int64, mutate func(note models.Note) (models.Note, error)) (models.Note, error) {
	log := logger.FromContextOr(ctx, n.logger)

	var updated models.Note
	err := n.withTx(ctx, func(tx DBTX) error {
		current, err := n.getNote(ctx, tx, noteID)
		if err != nil {
			return err
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}
		next.ID = current.ID
		next.UserID = current.UserID
		next.CreatedAt = current.CreatedAt

		query, args, err := buildUpdateNoteQuery(n.builder, next)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.UpdateNote").
				Int64("note_id", noteID).
				Msg("failed to update note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, n.classifyError(err))
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrNoteNotFound
		}

		updated = next
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote implements [NoteRepository.DeleteNote]. Returns [ErrNoteNotFound]
// when nothing was deleted.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContextOr(ctx, n.logger)

	query, args, err := buildDeleteNoteQuery(n.builder, noteID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, n.classifyError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, nil
}
