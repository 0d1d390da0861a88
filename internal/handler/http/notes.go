package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.PrincipalFromContext(r.Context())

	query := r.URL.Query()
	page := models.PageRequest{
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("per_page")),
	}

	notes, err := h.services.NoteService.List(r.Context(), principal, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrAuthenticationRequired)
		return
	}

	var input models.NoteInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), principal, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.PrincipalFromContext(r.Context())

	note, err := h.services.NoteService.Get(r.Context(), principal, noteIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// updateNote serves both PUT and PATCH; either way only the provided fields
// change.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrAuthenticationRequired)
		return
	}

	var input models.NoteInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), principal, noteIDFromRequest(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.PrincipalFromContext(r.Context())

	if err := h.services.NoteService.Delete(r.Context(), principal, noteIDFromRequest(r)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteIDFromRequest parses the {id} path segment. Anything that is not a
// positive integer becomes 0, which the note service reports as not found.
func noteIDFromRequest(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// queryInt parses a query parameter, returning 0 for missing or malformed
// values so that page normalization applies the defaults.
func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
