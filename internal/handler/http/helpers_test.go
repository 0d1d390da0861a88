package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

const testCookieValue = "signed-session-token"

type testServices struct {
	auth    *mock.MockAuthService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
}

// newTestHandler builds a Handler on top of gomock services. Options may
// adjust the configuration before the handler is created.
func newTestHandler(t *testing.T, opts ...func(cfg *config.StructuredConfig)) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}

	cfg := &config.StructuredConfig{
		App: config.App{SessionDuration: time.Hour},
		Server: config.Server{
			HTTPAddress: ":0",
			CookieName:  "session",
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	services := &service.Services{
		AuthService:    ts.auth,
		NoteService:    ts.notes,
		AppInfoService: ts.appInfo,
		HealthService:  ts.health,
	}

	return NewHandler(services, cfg.Server, cfg.App, logger.Nop()), ts
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authenticate attaches a session cookie to req and makes the auth mock
// resolve it to principal.
func authenticate(ts *testServices, req *http.Request, principal models.Principal) {
	req.AddCookie(&http.Cookie{Name: "session", Value: testCookieValue})
	ts.auth.EXPECT().ResolveSession(gomock.Any(), testCookieValue).Return(principal, nil).AnyTimes()
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
