package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// executeSession runs withSession and reports the principal seen by next.
func executeSession(h *Handler, req *http.Request) (*httptest.ResponseRecorder, models.Principal, bool) {
	var (
		principal models.Principal
		called    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		principal, _ = utils.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withSession(next).ServeHTTP(rec, req)
	return rec, principal, called
}

func TestWithSession(t *testing.T) {
	valid := models.Principal{UserID: 3, SessionID: "sid"}

	tests := []struct {
		name          string
		cookie        string
		resolved      models.Principal
		resolveErr    error
		wantCalled    bool
		wantPrincipal models.Principal
		wantStatus    int
	}{
		{name: "no cookie", wantCalled: true, wantStatus: http.StatusOK},
		{name: "valid cookie", cookie: "tok", resolved: valid, wantCalled: true, wantPrincipal: valid, wantStatus: http.StatusOK},
		{name: "stale cookie", cookie: "tok", resolveErr: service.ErrInvalidSession, wantCalled: true, wantStatus: http.StatusOK},
		{name: "storage down", cookie: "tok", resolveErr: store.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
				ts.auth.EXPECT().ResolveSession(gomock.Any(), tt.cookie).Return(tt.resolved, tt.resolveErr)
			}

			rec, principal, called := executeSession(h, req)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantPrincipal, principal)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWithSession_OtherCookieNameIgnored(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "other", Value: "tok"})

	_, principal, called := executeSession(h, req)

	assert.True(t, called)
	assert.False(t, principal.IsAuthenticated())
}
