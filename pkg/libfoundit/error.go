package libfoundit

import (
	"encoding/json"
	"io"
	"net/http"
)

// An APIError reprensents an HTTP error returned by foundit server.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func parseAPIError(r io.Reader, code int) error {
	apierr := APIError{StatusCode: code}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&apierr); err != nil || apierr.Message == "" {
		apierr.Message = http.StatusText(code)
	}
	return &apierr
}

func (e *APIError) Error() string {
	return e.Message
}
