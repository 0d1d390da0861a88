package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator())
}

func TestNoteValidator_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      models.NoteInput
		wantErr error
	}{
		{name: "title only", in: models.NoteInput{Title: strPtr("t")}},
		{name: "title and body", in: models.NoteInput{Title: strPtr("t"), Body: strPtr("b")}},
		{name: "title padded", in: models.NoteInput{Title: strPtr("  t  ")}},
		{name: "exactly 200 runes", in: models.NoteInput{Title: strPtr(strings.Repeat("é", 200))}},
		{name: "missing title", in: models.NoteInput{Body: strPtr("b")}, wantErr: ErrTitleRequired},
		{name: "empty title", in: models.NoteInput{Title: strPtr("")}, wantErr: ErrTitleRequired},
		{name: "whitespace title", in: models.NoteInput{Title: strPtr(" \t\n ")}, wantErr: ErrTitleRequired},
		{name: "title too long", in: models.NoteInput{Title: strPtr(strings.Repeat("a", 201))}, wantErr: ErrTitleTooLong},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_Update(t *testing.T) {
	tests := []struct {
		name    string
		in      models.NoteInput
		wantErr error
	}{
		{name: "body only", in: models.NoteInput{Body: strPtr("")}},
		{name: "title only", in: models.NoteInput{Title: strPtr("new")}},
		{name: "nothing", in: models.NoteInput{}, wantErr: ErrNoFieldsToUpdate},
		{name: "blank title", in: models.NoteInput{Title: strPtr("   ")}, wantErr: ErrTitleRequired},
		{name: "blank title with body", in: models.NoteInput{Title: strPtr(""), Body: strPtr("b")}, wantErr: ErrTitleRequired},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.in, FieldAnyField, FieldOptionalTitle)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.NoteInput)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.NoteInput{Title: strPtr("t")}, "color"), ErrUnknownField)
}
