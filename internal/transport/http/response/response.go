package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baechuer/blog-api/internal/domain"
)

// SuccessBody is the uniform success envelope.
type SuccessBody struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// ErrorBody is the uniform error envelope. Stack is only populated in dev.
type ErrorBody struct {
	Success    bool                 `json:"success"`
	StatusCode int                  `json:"statusCode"`
	Message    string               `json:"message"`
	Errors     []domain.ErrorSource `json:"error"`
	Stack      string               `json:"stack,omitempty"`
}

// Writer renders the envelopes. Dev toggles stack traces in error bodies;
// it is injected from config so the package carries no global state.
type Writer struct {
	Dev bool
}

func NewWriter(dev bool) *Writer {
	return &Writer{Dev: dev}
}

// WriteJSON writes v as JSON with the given status code.
// It sets Content-Type to application/json; charset=utf-8 if not already set.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 success envelope.
func (wr *Writer) OK(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, SuccessBody{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

// Created writes a 201 success envelope.
func (wr *Writer) Created(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, SuccessBody{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    message,
		Data:       data,
	})
}

// WriteError converts a domain error into the error envelope. Non-domain
// errors become opaque 500s; the cause only ever surfaces via Stack in dev.
func (wr *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "something went wrong"
	var sources []domain.ErrorSource

	var de *domain.Error
	if errors.As(err, &de) {
		status = StatusFromKind(de.Kind)
		message = de.Message
		sources = de.Sources
	}

	if len(sources) == 0 {
		sources = []domain.ErrorSource{{Path: "", Message: message}}
	}

	body := ErrorBody{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Errors:     sources,
	}
	if wr.Dev && err != nil {
		body.Stack = err.Error()
	}

	WriteJSON(w, status, body)
}

// NotFound writes the envelope for unmatched routes.
func (wr *Writer) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, ErrorBody{
		Success:    false,
		StatusCode: http.StatusNotFound,
		Message:    "API not found",
		Errors: []domain.ErrorSource{{
			Path:    r.URL.Path,
			Message: "your requested path is not found",
		}},
	})
}

// StatusFromKind maps domain error kinds to HTTP status codes.
func StatusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
