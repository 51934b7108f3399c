package common

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error type every service returns to its handler. Message and
// Errors are rendered to the client; Cause never is.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Cause      error    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func newAPIError(status int, message string, details ...string) *APIError {
	if details == nil {
		details = []string{}
	}
	return &APIError{StatusCode: status, Message: message, Errors: details}
}

// ErrValidation reports malformed input: bad ids, missing fields, bad sort keys.
func ErrValidation(message string, details ...string) *APIError {
	return newAPIError(http.StatusBadRequest, message, details...)
}

func ErrUnauthorized(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, message)
}

// ErrForbidden is returned when the caller is authenticated but does not own
// the resource.
func ErrForbidden(message string) *APIError {
	return newAPIError(http.StatusForbidden, message)
}

func ErrNotFound(message string) *APIError {
	return newAPIError(http.StatusNotFound, message)
}

func ErrConflict(message string) *APIError {
	return newAPIError(http.StatusConflict, message)
}

// ErrInternal wraps a store or storage failure. The cause is kept for logs.
func ErrInternal(message string, cause error) *APIError {
	e := newAPIError(http.StatusInternalServerError, message)
	e.Cause = cause
	return e
}

// AsAPIError unwraps err into an *APIError. Anything else becomes a generic 500.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternal("Something went wrong", err)
}

// StatusOf returns the HTTP status an error would be rendered with.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return AsAPIError(err).StatusCode
}
