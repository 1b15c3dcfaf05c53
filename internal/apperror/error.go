package apperror

import (
	"encoding/json"
	"net/http"
)

// MessageMissingFields is the message rendered when a lost-item report lacks one of its required fields.
const MessageMissingFields = "Missing required fields"

// An Error represents the error format rendered by the foundit API.
type Error struct {
	HTTPCode int
	Message  string
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if apperr, ok := err.(*Error); ok {
		return apperr.HTTPCode
	}
	return http.StatusInternalServerError
}

// MissingFields returns the validation error of an incomplete lost-item report.
func MissingFields() *Error {
	return &Error{HTTPCode: http.StatusBadRequest, Message: MessageMissingFields}
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"error": e.Message,
	})
}
