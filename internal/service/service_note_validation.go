package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects anonymous principals, invalid ids and
// invalid input before calling the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) List(ctx context.Context, principal models.Principal, page models.PageRequest) (models.NotePage, error) {
	if !principal.IsAuthenticated() {
		return models.NotePage{}, ErrAuthenticationRequired
	}

	return v.inner.List(ctx, principal, page)
}

func (v *NoteValidationService) Create(ctx context.Context, principal models.Principal, input models.NoteInput) (models.Note, error) {
	if !principal.IsAuthenticated() {
		return models.Note{}, ErrAuthenticationRequired
	}
	if err := v.validator.Validate(ctx, input, validators.FieldTitle); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.Create(ctx, principal, input)
}

func (v *NoteValidationService) Get(ctx context.Context, principal models.Principal, noteID int64) (models.Note, error) {
	if !principal.IsAuthenticated() {
		return models.Note{}, ErrAuthenticationRequired
	}
	if noteID <= 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return v.inner.Get(ctx, principal, noteID)
}

func (v *NoteValidationService) Update(ctx context.Context, principal models.Principal, noteID int64, input models.NoteInput) (models.Note, error) {
	if !principal.IsAuthenticated() {
		return models.Note{}, ErrAuthenticationRequired
	}
	if noteID <= 0 {
		return models.Note{}, ErrNoteNotFound
	}
	if err := v.validator.Validate(ctx, input, validators.FieldAnyField, validators.FieldOptionalTitle); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before updating: %w", err)
	}

	return v.inner.Update(ctx, principal, noteID, input)
}

func (v *NoteValidationService) Delete(ctx context.Context, principal models.Principal, noteID int64) error {
	if !principal.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if noteID <= 0 {
		return ErrNoteNotFound
	}

	return v.inner.Delete(ctx, principal, noteID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
