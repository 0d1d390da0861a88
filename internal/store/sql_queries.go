package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	usersTable = "users"
	notesTable = "notes"
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}
	noteColumns = []string{"id", "user_id", "title", "body", "created_at", "updated_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns("user_id", "title", "body", "created_at", "updated_at").
		Values(note.UserID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectNoteQuery(b sq.StatementBuilderType, noteID int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

// buildSelectNotesPageQuery selects one page of a user's notes in ascending
// id order.
func buildSelectNotesPageQuery(b sq.StatementBuilderType, userID int64, page models.PageRequest) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		Limit(uint64(page.PerPage)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountNotesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateNoteQuery writes the mutable columns of note. Owner and
// created_at are never touched.
func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Update(notesTable).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID, userID int64) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}
