package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants accepted by [NoteValidator].
const (
	// FieldTitle requires a title that is non-empty after trimming and at
	// most 200 characters long.
	FieldTitle = "title"

	// FieldOptionalTitle applies the FieldTitle rules only when a title was
	// provided.
	FieldOptionalTitle = "optional_title"

	// FieldAnyField requires at least one of title or body.
	FieldAnyField = "any_field"
)

const titleRules = "required,max=200"

// NoteValidator validates [models.NoteInput] for create and update requests.
type NoteValidator struct {
	validate *validator.Validate
}

func NewNoteValidator() Validator {
	return &NoteValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks note input. Without fields the create rules apply.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateNoteInput(ctx, value, fields...)
	case *models.NoteInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNoteInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteInput(ctx context.Context, in models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if in.Title == nil {
				return ErrTitleRequired
			}
			if err := v.validateTitle(ctx, *in.Title); err != nil {
				return err
			}
		case FieldOptionalTitle:
			if in.Title == nil {
				continue
			}
			if err := v.validateTitle(ctx, *in.Title); err != nil {
				return err
			}
		case FieldAnyField:
			if in.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateTitle(ctx context.Context, title string) error {
	err := v.validate.VarCtx(ctx, strings.TrimSpace(title), titleRules)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 && validationErrs[0].Tag() == "max" {
		return ErrTitleTooLong
	}
	return ErrTitleRequired
}
