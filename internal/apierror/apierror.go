// Package apierror defines the typed errors services return and the JSON
// shape they take on the wire. Only the ErrorHandler middleware turns them
// into responses, so internal details never reach clients.
package apierror

import (
	"errors"
	"net/http"
)

// FieldError describes one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries an HTTP status and a human-readable message.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string { return e.Message }

// Body is the canonical error envelope for all 4xx/5xx responses.
type Body struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Data       []FieldError `json:"data,omitempty"`
}

func (e *Error) Body() Body {
	return Body{StatusCode: e.Status, Message: e.Message, Data: e.Fields}
}

func New(status int, msg string) *Error {
	return &Error{Status: status, Message: msg}
}

func BadRequest(msg string) *Error     { return New(http.StatusBadRequest, msg) }
func Conflict(msg string) *Error       { return New(http.StatusConflict, msg) }
func NotFound(msg string) *Error       { return New(http.StatusNotFound, msg) }
func BadCredentials(msg string) *Error { return New(http.StatusUnauthorized, msg) }
func Unauthorized(msg string) *Error   { return New(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *Error      { return New(http.StatusForbidden, msg) }
func Unprocessable(msg string) *Error  { return New(http.StatusUnprocessableEntity, msg) }
func TooManyRequests(msg string) *Error {
	return New(http.StatusTooManyRequests, msg)
}

// Internal is the only message a client ever sees for unexpected failures.
func Internal() *Error {
	return New(http.StatusInternalServerError, "Erro interno do servidor")
}

// Validation wraps every violated field in a single BadRequest.
func Validation(fields []FieldError) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Falha na validação dos dados", Fields: fields}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status for err, 500 when err is not typed.
func StatusOf(err error) int {
	if apiErr, ok := As(err); ok {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
