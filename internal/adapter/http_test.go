// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL, hashKey string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(Options{Address: serverURL, Timeout: 5 * time.Second, HashKey: hashKey}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func strPtr(s string) *string { return &s }

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://notes.example.com/", want: "https://notes.example.com"},
		{name: "whitespace", raw: "  127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(Options{}, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, a)
}

// ── Health / Version ─────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))
		if status == http.StatusOK {
			writeJSON(t, w, status, models.StatusResponse{Status: "ok"})
			return
		}
		writeJSON(t, w, status, models.ErrorResponse{Error: "service unavailable"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	require.NoError(t, a.Health(context.Background()))

	status = http.StatusServiceUnavailable
	err := a.Health(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestRegister_KeepsSessionCookie(t *testing.T) {
	user := models.User{UserID: 1, Email: "alice@example.com"}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)
		assert.Equal(t, "secret", creds.Password)

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		writeJSON(t, w, http.StatusCreated, models.UserResponse{User: user})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.UserResponse{User: user})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	got, err := a.Register(ctx, models.Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	me, err := a.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, me)
}

func TestMe_Anonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "authentication required")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCheckSession(t *testing.T) {
	authenticated := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check_session", r.URL.Path)
		if !authenticated {
			writeJSON(t, w, http.StatusOK, struct{}{})
			return
		}
		writeJSON(t, w, http.StatusOK, models.UserResponse{User: models.User{UserID: 2, Email: "bob@example.com"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	user, err := a.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)

	authenticated = true
	user, err = a.CheckSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(2), user.UserID)
}

func TestLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/logout", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "logged out"})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL, "").Logout(context.Background()))
}

// ── Notes ────────────────────────────────────────────────────────────────────

func TestListNotes_SendsPageParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		writeJSON(t, w, http.StatusOK, models.NotePage{
			Data: []models.Note{{ID: 6, Title: "six"}},
			Meta: models.PageMeta{Page: 2, PerPage: 5, Total: 6, Pages: 2},
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL, "").ListNotes(context.Background(), models.PageRequest{Page: 2, PerPage: 5})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "six", page.Data[0].Title)
	assert.Equal(t, 2, page.Meta.Pages)
}

func TestListNotes_OmitsZeroParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, models.NotePage{Data: []models.Note{}})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL, "").ListNotes(context.Background(), models.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestCreateNote_SignsBody(t *testing.T) {
	hasher := utils.NewHasher(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, hasher.Equal(body, r.Header.Get(hashHeader)))

		resp, err := json.Marshal(models.Note{ID: 1, Title: "hello"})
		require.NoError(t, err)
		w.Header().Set(hashHeader, hasher.HashHex(resp))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(resp)
	}))
	defer srv.Close()

	note, err := newTestAdapter(t, srv.URL, testHashKey).CreateNote(context.Background(), models.NoteInput{Title: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.ID)
}

func TestGetNote_ResponseHashMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(hashHeader, "00ff")
		writeJSON(t, w, http.StatusOK, models.Note{ID: 1, Title: "tampered"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, testHashKey).GetNote(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponseHash)
}

func TestUpdateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notes/4", r.URL.Path)

		var input models.NoteInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Nil(t, input.Title)
		require.NotNil(t, input.Body)

		writeJSON(t, w, http.StatusOK, models.Note{ID: 4, Title: "kept", Body: *input.Body})
	}))
	defer srv.Close()

	note, err := newTestAdapter(t, srv.URL, "").UpdateNote(context.Background(), 4, models.NoteInput{Body: strPtr("new body")})
	require.NoError(t, err)
	assert.Equal(t, "new body", note.Body)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"title is required"}`, want: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"forbidden"}`, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"note not found"}`, want: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"email already registered"}`, want: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, body: ``, want: ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, "").DeleteNote(context.Background(), 9)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeleteNote_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL, "").DeleteNote(context.Background(), 9))
}
