package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a structured failure reported by the reservation API: the HTTP
// status plus the optional array of human-readable messages the server puts
// in the "erros" field of error bodies.
type Error struct {
	StatusCode int
	Messages   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Messages[0])
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// First returns the first server-provided message, or empty.
func (e *Error) First() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return ""
}

// Message extracts the user-facing text for err: the first server-provided
// message when err carries one, otherwise the given fallback. This is the
// single place the "server message or generic string" policy lives.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if msg := apiErr.First(); msg != "" {
			return msg
		}
	}
	return fallback
}

// errorBody is the JSON envelope of non-2xx responses.
type errorBody struct {
	Erros []string `json:"erros"`
}

func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}
	if len(body) > 0 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			apiErr.Messages = eb.Erros
		}
	}
	return apiErr
}
