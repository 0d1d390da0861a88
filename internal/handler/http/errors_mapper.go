package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is checked in order; the first entry matched by errors.Is
// decides the status, and the client sees that entry's message.
var errorStatusMap = []errorStatus{
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{utils.ErrMalformedJSON, http.StatusBadRequest},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},

	{validators.ErrEmailRequired, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrEmailTooLong, http.StatusBadRequest},
	{validators.ErrPasswordRequired, http.StatusBadRequest},
	{validators.ErrPasswordTooLong, http.StatusBadRequest},
	{validators.ErrPasswordMismatch, http.StatusBadRequest},
	{validators.ErrTitleRequired, http.StatusBadRequest},
	{validators.ErrTitleTooLong, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},

	{service.ErrEmailTaken, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrAuthenticationRequired, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNoteNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

// statusFromError returns the status and client message for err.
// Unknown errors are reported as a generic 500.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			message := entry.err.Error()
			if entry.err == store.ErrStorageUnavailable {
				message = ErrServiceUnavailable.Error()
			}
			return entry.status, message
		}
	}
	return http.StatusInternalServerError, errInternal.Error()
}

// writeError writes {"error": "..."} with the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Str("func", "writeError").Int("status", status).AnErr("reason", err).Send()
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); writeErr != nil {
		log.Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}
