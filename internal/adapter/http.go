package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	hashHeader    = "HashSHA256"
	traceIDHeader = "X-Trace-ID"
)

// Options configures [NewHTTPServerAdapter].
type Options struct {
	// Address is the server address, with or without the http:// scheme.
	Address string
	// Timeout limits every request. Zero means no limit.
	Timeout time.Duration
	// HashKey enables signing of request bodies and verification of
	// response bodies with the HashSHA256 header.
	HashKey string
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	traces *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from opts.Address and configures
// a cookie-keeping HTTP client with the resolved base URL and request timeout.
//
// Returns an error if opts.Address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(opts Options, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(opts.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, opts.Timeout),
		traces: utils.NewUUIDGenerator(),
		logger: logger,
	}

	if opts.HashKey != "" {
		adapter.hasher = utils.NewHasher(opts.HashKey)
		adapter.client.OnAfterResponse(adapter.verifyResponseHash)
	}

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [ServerAdapter] with GET /.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] with GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /auth/register; the session cookie from the response is kept in the
// client's cookie jar.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/auth/register", credentials)
}

// Login implements [ServerAdapter]. It POSTs the credentials to /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/auth/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.User, error) {
	req, err := h.jsonRequest(ctx, credentials)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", path, err)
	}
	return body.User, nil
}

// Logout implements [ServerAdapter] with POST /auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Me implements [ServerAdapter] with GET /auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.request(ctx).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}
	return body.User, nil
}

// CheckSession implements [ServerAdapter] with GET /auth/check_session.
// The server answers {} for anonymous clients.
func (h *httpServerAdapter) CheckSession(ctx context.Context) (*models.User, error) {
	resp, err := h.request(ctx).Get("/auth/check_session")
	if err != nil {
		return nil, fmt.Errorf("check session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body struct {
		User *models.User `json:"user"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode check session response: %w", err)
	}
	return body.User, nil
}

// ListNotes implements [ServerAdapter] with GET /notes/?page=&per_page=.
// Zero fields of page are left to the server defaults.
func (h *httpServerAdapter) ListNotes(ctx context.Context, page models.PageRequest) (models.NotePage, error) {
	req := h.request(ctx)
	if page.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.PerPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(page.PerPage))
	}

	resp, err := req.Get("/notes/")
	if err != nil {
		return models.NotePage{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotePage{}, err
	}

	var notes models.NotePage
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return models.NotePage{}, fmt.Errorf("decode list notes response: %w", err)
	}
	return notes, nil
}

// CreateNote implements [ServerAdapter] with POST /notes/.
func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	req, err := h.jsonRequest(ctx, input)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.Post("/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	return decodeNote(resp)
}

// GetNote implements [ServerAdapter] with GET /notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	resp, err := h.request(ctx).Get(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	return decodeNote(resp)
}

// UpdateNote implements [ServerAdapter] with PUT /notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, input models.NoteInput) (models.Note, error) {
	req, err := h.jsonRequest(ctx, input)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.Put(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	return decodeNote(resp)
}

// DeleteNote implements [ServerAdapter] with DELETE /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.request(ctx).Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

func notePath(noteID int64) string {
	return "/notes/" + strconv.FormatInt(noteID, 10)
}

func decodeNote(resp *resty.Response) (models.Note, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err := json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}
	return note, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.traces.Generate())
}

// jsonRequest marshals body and, when a hash key is configured, signs it.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(hashHeader, h.hasher.HashHex(payload))
	}
	return req, nil
}

func (h *httpServerAdapter) verifyResponseHash(_ *resty.Client, resp *resty.Response) error {
	signature := resp.Header().Get(hashHeader)
	if signature == "" {
		return nil
	}
	if !h.hasher.Equal(resp.Body(), signature) {
		h.logger.Error().
			Str("func", "*httpServerAdapter.verifyResponseHash").
			Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
			Msg("response hash mismatch")
		return ErrInvalidResponseHash
	}
	return nil
}
