package http

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const hashHeader = "HashSHA256"

// withHashing verifies the HashSHA256 header of incoming requests and signs
// every response body the same way. It is a no-op when no hash key is
// configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		if signature := r.Header.Get(hashHeader); signature != "" {
			// read bytes from body
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				writeError(w, r, err)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Equal(body, signature) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				writeError(w, r, ErrIntegrityCheckFailed)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		body := hw.buf.Bytes()
		w.Header().Set(hashHeader, h.hasher.HashHex(body))
		if len(body) > 0 {
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		}
		w.WriteHeader(hw.status)
		if _, err := w.Write(body); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("error writing signed response")
		}
	})
}

// hashingResponseWriter holds the response back until the whole body is
// known, so that its signature can be sent as a header.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}
