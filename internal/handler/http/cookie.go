package http

import (
	"net/http"
	"time"
)

const defaultCookieName = "session"

type cookieSettings struct {
	name   string
	secure bool
	maxAge time.Duration
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookie.maxAge.Seconds()),
		Expires:  time.Now().Add(h.cookie.maxAge),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the raw session cookie value, or "" when absent.
func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookie.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
