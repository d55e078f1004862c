package apischema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// DefaultMaxBodyBytes is the request body limit applied by [Middleware].
const DefaultMaxBodyBytes = 1 << 20

// ErrorEnvelope is the JSON body written for rejected requests.
type ErrorEnvelope struct {
	Success          bool             `json:"success"`
	Error            string           `json:"error"`
	ValidationErrors ValidationErrors `json:"validationErrors,omitempty"`
}

type middlewareConfig struct {
	maxBodyBytes int64
	logger       *slog.Logger
}

// MiddlewareOption configures [Middleware].
type MiddlewareOption func(*middlewareConfig)

// WithMaxBodyBytes limits how much of the body is read. n <= 0 disables the limit.
func WithMaxBodyBytes(n int64) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.maxBodyBytes = n
	}
}

// WithLogger logs rejected requests at debug level.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.logger = l
	}
}

type bodyKey struct{}

// Body returns the sanitized payload stored by [Middleware], or nil when the
// request did not pass through it.
func Body(r *http.Request) map[string]any {
	m, _ := r.Context().Value(bodyKey{}).(map[string]any)
	return m
}

// Middleware validates the JSON body of every request against s.
//
// A valid body is replaced by its sanitized form: [Body] returns it as a map
// and r.Body yields it re-encoded as JSON. An invalid body is answered with
// 400 and an [ErrorEnvelope] listing the errors in schema order; the next
// handler is not called. Bodies that are not a JSON object are answered with
// 400 (413 when over the size limit) before validation runs.
//
// The returned function fits net/http, chi and gorilla/mux middleware chains.
func Middleware(s *Schema, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{maxBodyBytes: DefaultMaxBodyBytes}
	for _, o := range opts {
		o(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := io.Reader(http.NoBody)
			if r.Body != nil {
				body = r.Body
				if cfg.maxBodyBytes > 0 {
					body = http.MaxBytesReader(w, r.Body, cfg.maxBodyBytes)
				}
			}

			res, err := DecodeAndEvaluate(body, s)
			if err != nil {
				cfg.debug(r, "rejected request body", "error", err)
				status := http.StatusBadRequest
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					status = http.StatusRequestEntityTooLarge
				}
				writeJSON(w, status, ErrorEnvelope{Error: "Invalid request body"})
				return
			}
			if !res.Valid() {
				cfg.debug(r, "validation failed", "fields", res.Errors.Fields())
				WriteValidationErrors(w, res.Errors)
				return
			}

			encoded, err := json.Marshal(res.Value)
			if err != nil {
				// Evaluate only yields finite numbers, so this should not happen.
				cfg.debug(r, "re-encoding sanitized body", "error", err)
				writeJSON(w, http.StatusBadRequest, ErrorEnvelope{Error: "Invalid request body"})
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), bodyKey{}, res.Value))
			r.Body = io.NopCloser(bytes.NewReader(encoded))
			r.ContentLength = int64(len(encoded))
			r.Header = r.Header.Clone()
			r.Header.Set("Content-Length", strconv.Itoa(len(encoded)))
			next.ServeHTTP(w, r)
		})
	}
}

// WriteValidationErrors writes the 400 validation envelope for errs.
func WriteValidationErrors(w http.ResponseWriter, errs ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, ErrorEnvelope{
		Error:            "Validation failed",
		ValidationErrors: errs,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (c middlewareConfig) debug(r *http.Request, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	args = append(args, "method", r.Method, "path", r.URL.Path)
	c.logger.DebugContext(r.Context(), msg, args...)
}
