// Package respond writes the JSON envelopes shared by every HTTP endpoint:
// {success, data, message?, pagination?} on success and
// {success:false, message, errors?, error?} on failure.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/buildline/crm-backend/internal/domain"
)

// Envelope is the response body of every API endpoint.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Errors     []FieldError       `json:"errors,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// FieldError is a per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes a success envelope carrying data.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Message writes a success envelope with a human readable message.
func Message(w http.ResponseWriter, status int, data any, message string) {
	JSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// Page writes one page of list results. Items is never encoded as null.
func Page[T any](w http.ResponseWriter, page domain.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	p := page.Pagination
	JSON(w, http.StatusOK, Envelope{Success: true, Data: items, Pagination: &p})
}

// Fail writes an error envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// Error maps err onto a status code and error envelope. Unexpected errors are
// logged and answered with a generic 500.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		dup        *domain.DuplicateError
		validation *domain.ValidationError
	)

	switch {
	case errors.As(err, &dup):
		JSON(w, http.StatusBadRequest, Envelope{
			Message: dup.Message,
			Errors:  []FieldError{{Field: dup.Field, Message: dup.Message}},
		})
	case errors.As(err, &validation):
		fields := make([]FieldError, len(validation.Errors))
		for i, fe := range validation.Errors {
			fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
		}
		msg := "Validation failed"
		if len(fields) == 1 {
			msg = fields[0].Message
		}
		JSON(w, http.StatusBadRequest, Envelope{Message: msg, Errors: fields})
	case errors.Is(err, domain.ErrInvalidID):
		Fail(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, domain.ErrInvalidTransition):
		Fail(w, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, domain.ErrValidation):
		Fail(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, domain.ErrAlreadyExists):
		Fail(w, http.StatusBadRequest, "Record already exists")
	case errors.Is(err, domain.ErrNotFound):
		Fail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrConflict):
		Fail(w, http.StatusConflict, "Conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		Fail(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrExportUnavailable):
		Fail(w, http.StatusNotImplemented, "Export format not available")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		JSON(w, http.StatusInternalServerError, Envelope{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
