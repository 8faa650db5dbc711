// Package apperror defines the error taxonomy shared across the archive API.
// Every failure surfaced to the HTTP layer is one of these types; handlers
// map them to status codes without inspecting error strings.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError means the request was valid but nothing matched: no segments
// in a time range, no keyword hits, or a missing media file.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidInputError means the request itself is malformed: empty keyword,
// unparseable timestamps, bad numeric parameters, or a path escaping the
// archive root.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// StoreUnavailableError wraps a transcript store connection or query failure.
// Not retryable within the request.
type StoreUnavailableError struct {
	Cause error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("transcript store unavailable: %v", e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Cause
}

// SummarizationError means the summarization endpoint answered with a
// non-success status. Status carries the upstream code for diagnosability.
type SummarizationError struct {
	Status int
	Body   string
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed: upstream status %d: %s", e.Status, e.Body)
}

// NotFound creates a NotFoundError with a formatted message.
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// InvalidInput creates an InvalidInputError with a formatted message.
func InvalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps err as a StoreUnavailableError.
func StoreUnavailable(err error) error {
	return &StoreUnavailableError{Cause: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// HTTPStatus maps an error to the response status used by the API:
// 404 for not-found, 400 for invalid input, 502 for summarization failures,
// 503 for store failures, 500 for anything unclassified.
func HTTPStatus(err error) int {
	var (
		notFound *NotFoundError
		invalid  *InvalidInputError
		storeErr *StoreUnavailableError
		summErr  *SummarizationError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &summErr):
		return http.StatusBadGateway
	case errors.As(err, &storeErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
