package shttperr

import (
	"net/http"
	"sort"
	"strings"
)

// Error is an error that carries the http status it should be
// reported with.
type Error struct {
	Status  int
	Message string
	Code    string
}

// New returns a new Error.
func New(status int, message, code string) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Code:    code,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// JSON returns the body that is sent to the client.
func (e *Error) JSON() map[string]any {
	return map[string]any{"error": e.Message}
}

// ValidationError collects errors per field.
type ValidationError struct {
	Errors map[string]string
}

// SetError sets the error message for the given key.
func (v *ValidationError) SetError(key, message string) {
	if v.Errors == nil {
		v.Errors = map[string]string{}
	}

	v.Errors[key] = message
}

// HasError reports whether at least one error was collected.
func (v *ValidationError) HasError() bool {
	return len(v.Errors) > 0
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Errors))

	for k, msg := range v.Errors {
		msgs = append(msgs, k+": "+msg)
	}

	sort.Strings(msgs)

	return strings.Join(msgs, ", ")
}

// Status is always 400 for validation errors.
func (v *ValidationError) Status() int {
	return http.StatusBadRequest
}

// JSON returns the body that is sent to the client.
func (v *ValidationError) JSON() map[string]any {
	return map[string]any{"errors": v.Errors}
}
