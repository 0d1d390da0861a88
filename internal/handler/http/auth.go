package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user registered but session creation failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// logout always succeeds for the client; a failure to delete the server-side
// session is only logged.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.PrincipalFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), principal); err != nil {
		logger.FromRequest(r).Err(err).Str("session_id", principal.SessionID).Msg("error deleting session on logout")
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.PrincipalFromContext(r.Context())

	user, err := h.services.AuthService.CurrentUser(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// checkSession is me without the 401: anonymous callers get an empty object.
func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), principal)
	if errors.Is(err, service.ErrAuthenticationRequired) {
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.AuthService.CreateSession(r.Context(), user)
	if err != nil {
		return err
	}

	h.setSessionCookie(w, token.String())
	return nil
}
