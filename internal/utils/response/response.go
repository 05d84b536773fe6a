// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a student, a list, a count…).
// Error responses always look like:
//
//	{ "status": "error", "error": "Student not found with ID: 7" }
//
// Validation failures additionally list every failing field:
//
//	{ "status": "error", "error": "Validation failed",
//	  "fields": [ { "field": "age", "message": "Age must be at least 16" } ] }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string                `json:"status"`           // "ok" or "error"
	Error  string                `json:"error"`            // human-readable error detail
	Fields []validate.FieldError `json:"fields,omitempty"` // per-field validation messages
}

// Message is the body of the admin endpoints' success responses.
type Message struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

// Status string constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ValidationFailed is the top-level error text of a validation response.
const ValidationFailed = "Validation failed"

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ErrorMessage builds an error Response from a fixed message.
func ErrorMessage(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError converts a validation result into a Response listing
// each failing field with its message.
func ValidationError(verr *validate.Error) Response {
	return Response{
		Status: StatusError,
		Error:  ValidationFailed,
		Fields: verr.Fields,
	}
}

// InternalError logs err with the request id and writes a 500 whose body
// carries no detail.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Errorw("internal error",
		"error", err,
		"method", r.Method,
		"uri", r.RequestURI,
	)
	_ = WriteJSON(w, http.StatusInternalServerError, ErrorMessage("Internal server error"))
}
