package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// withSession resolves the session cookie into a principal stored in the
// request context. Requests without a cookie, or with one that no longer
// resolves, continue as anonymous; deciding whether a route needs a user is
// left to the services.
//
// Only storage failures abort the request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := h.sessionToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ResolveSession(ctx, tokenString)
		if errors.Is(err, service.ErrInvalidSession) {
			logger.FromRequest(r).Debug().Str("func", "*Handler.withSession").Msg("stale session cookie, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}
