package router

import (
	"fmt"
	"net/http"
)

// GenericErrorMessage is the body of every unclassified failure
const GenericErrorMessage = "An error occurred while processing your request"

// HTTPError is a failure with a client-facing status and message
type HTTPError struct {
	Status  int
	Message string
	Details string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// body renders the JSON error envelope
func (e *HTTPError) body() map[string]interface{} {
	body := map[string]interface{}{"error": e.Message}
	if e.Details != "" {
		body["details"] = e.Details
	}
	return body
}

// NewError creates an HTTPError
func NewError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Wrap attaches the underlying cause to an HTTPError
func Wrap(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *HTTPError {
	return NewError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *HTTPError {
	return NewError(http.StatusUnauthorized, message)
}

func NotFound(message string) *HTTPError {
	return NewError(http.StatusNotFound, message)
}
