package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest, "request body is empty"},
		{"wrapped malformed", fmt.Errorf("%w: %w", utils.ErrMalformedJSON, errors.New("eof")), http.StatusBadRequest, "malformed JSON"},
		{"wrapped validation", fmt.Errorf("validation: %w", validators.ErrPasswordMismatch), http.StatusBadRequest, "password confirmation does not match"},
		{"conflict", service.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"anonymous", service.ErrAuthenticationRequired, http.StatusUnauthorized, "authentication required"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"not found", service.ErrNoteNotFound, http.StatusNotFound, "note not found"},
		{"storage", fmt.Errorf("x: %w", store.ErrStorageUnavailable), http.StatusServiceUnavailable, "service unavailable"},
		{"unknown", errors.New("secret detail"), http.StatusInternalServerError, "internal server error"},
		{"low-level store", store.ErrScanningRow, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

// An error matching several entries takes the first one.
func TestStatusFromError_FirstMatchWins(t *testing.T) {
	err := errors.Join(service.ErrAuthenticationRequired, store.ErrStorageUnavailable)

	status, _ := statusFromError(err)

	assert.Equal(t, http.StatusUnauthorized, status)
}
