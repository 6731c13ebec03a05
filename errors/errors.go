package errors

import (
	"fmt"
	"net/http"
)

// AppError is the error type surfaced to API clients. Message, Suggestion,
// and ExampleURL form the failure body; Code decides the HTTP status.
type AppError struct {
	Code       int    `json:"-"`
	Message    string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
	ExampleURL string `json:"example_url,omitempty"`
	Op         string `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithSuggestion attaches a recovery hint shown alongside the error message.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// WithExample attaches a known-good example URL to the failure body.
func (e *AppError) WithExample(url string) *AppError {
	e.ExampleURL = url
	return e
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Upstream marks failures reported by the external analysis engine.
func Upstream(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// CodeOf returns the HTTP status for err, defaulting to 500 for errors
// that did not originate as an AppError.
func CodeOf(err error) int {
	if e, ok := err.(*AppError); ok {
		return e.Code
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	if e, ok := err.(*AppError); ok {
		return e.Code == http.StatusNotFound
	}
	return false
}
