package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &noteRepository{DB: db, logger: db.logger}, mock
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows(noteColumns)
	for _, n := range notes {
		rows.AddRow(n.ID, n.UserID, n.Title, n.Body, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

// ── CreateNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_CreateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(int64(1), "title", "body", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	note, err := repo.CreateNote(context.Background(), models.Note{UserID: 1, Title: "title", Body: "body", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)
	assert.Equal(t, "title", note.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CreateNote_MissingOwner(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateNote(context.Background(), models.Note{UserID: 99, Title: "t"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── GetNote ───────────────────────────────────────────────────────────────────

func TestNoteRepository_GetNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM notes WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(noteRows(models.Note{ID: 3, UserID: 1, Title: "t", CreatedAt: now, UpdatedAt: now}))

	note, err := repo.GetNote(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), note.ID)
	assert.Equal(t, int64(1), note.UserID)
	assert.Equal(t, time.UTC, note.UpdatedAt.Location())
}

func TestNoteRepository_GetNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(noteRows())

	_, err := repo.GetNote(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── ListNotes / CountNotes ────────────────────────────────────────────────────

func TestNoteRepository_ListNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM notes WHERE user_id = \\$1 ORDER BY id ASC LIMIT 2 OFFSET 2").
		WithArgs(int64(1)).
		WillReturnRows(noteRows(
			models.Note{ID: 3, UserID: 1, Title: "c", CreatedAt: now, UpdatedAt: now},
			models.Note{ID: 4, UserID: 1, Title: "d", CreatedAt: now, UpdatedAt: now},
		))

	notes, err := repo.ListNotes(context.Background(), 1, models.PageRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(3), notes[0].ID)
	assert.Equal(t, int64(4), notes[1].ID)
}

func TestNoteRepository_ListNotes_Empty(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes").WillReturnRows(noteRows())

	notes, err := repo.ListNotes(context.Background(), 1, models.PageRequest{Page: 9, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_ListNotes_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("FROM notes").WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.ListNotes(context.Background(), 1, models.PageRequest{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestNoteRepository_ListNotes_RowError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now()

	rows := noteRows(models.Note{ID: 1, UserID: 1, Title: "a", CreatedAt: now, UpdatedAt: now}).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("FROM notes").WillReturnRows(rows)

	_, err := repo.ListNotes(context.Background(), 1, models.PageRequest{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestNoteRepository_CountNotes(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notes").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountNotes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

// ── UpdateNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_UpdateNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM notes WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(noteRows(models.Note{ID: 3, UserID: 1, Title: "old", Body: "b", CreatedAt: created, UpdatedAt: created}))
	mock.ExpectExec("UPDATE notes SET").
		WithArgs("new", "b", updated, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	note, err := repo.UpdateNote(context.Background(), 3, func(note models.Note) (models.Note, error) {
		note.Title = "new"
		note.UpdatedAt = updated
		// attempts to rewrite immutable fields are ignored
		note.UserID = 2
		note.CreatedAt = updated
		return note, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
	assert.Equal(t, int64(1), note.UserID)
	assert.True(t, note.CreatedAt.Equal(created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_MutateErrorRollsBack(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now()
	errForeign := errors.New("foreign")

	mock.ExpectBegin()
	mock.ExpectQuery("FROM notes WHERE id").
		WillReturnRows(noteRows(models.Note{ID: 3, UserID: 1, Title: "old", CreatedAt: now, UpdatedAt: now}))
	mock.ExpectRollback()

	_, err := repo.UpdateNote(context.Background(), 3, func(models.Note) (models.Note, error) {
		return models.Note{}, errForeign
	})
	assert.ErrorIs(t, err, errForeign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM notes WHERE id").WillReturnRows(noteRows())
	mock.ExpectRollback()

	called := false
	_, err := repo.UpdateNote(context.Background(), 3, func(n models.Note) (models.Note, error) {
		called = true
		return n, nil
	})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.False(t, called)
}

func TestNoteRepository_UpdateNote_BeginError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	_, err := repo.UpdateNote(context.Background(), 3, func(n models.Note) (models.Note, error) { return n, nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── DeleteNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_DeleteNote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "nothing deleted", affected: 0, wantErr: ErrNoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)

			mock.ExpectExec("DELETE FROM notes").
				WithArgs(int64(3), int64(1)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteNote(context.Background(), 3, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteRepository_DeleteNote_ExecError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(errors.New("boom"))

	err := repo.DeleteNote(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
