package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("keyword not found"), http.StatusNotFound},
		{"invalid input", InvalidInput("keyword is required"), http.StatusBadRequest},
		{"store unavailable", StoreUnavailable(errors.New("dial tcp: refused")), http.StatusServiceUnavailable},
		{"summarization", &SummarizationError{Status: 429, Body: "rate limited"}, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("search: %w", NotFound("no transcripts in this range")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFound("missing")) {
		t.Error("IsNotFound() = false for NotFoundError")
	}
	if !IsNotFound(fmt.Errorf("wrap: %w", NotFound("missing"))) {
		t.Error("IsNotFound() = false for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound() = true for unrelated error")
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(InvalidInput("empty keyword")) {
		t.Error("IsInvalidInput() = false for InvalidInputError")
	}
	if IsInvalidInput(NotFound("missing")) {
		t.Error("IsInvalidInput() = true for NotFoundError")
	}
}

func TestStoreUnavailableUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := StoreUnavailable(cause)
	if !errors.Is(err, cause) {
		t.Error("StoreUnavailable() should wrap its cause")
	}
}

func TestSummarizationErrorMessage(t *testing.T) {
	err := &SummarizationError{Status: 500, Body: "internal"}
	msg := err.Error()
	if want := "upstream status 500"; !strings.Contains(msg, want) {
		t.Errorf("Error() = %q, want it to contain %q", msg, want)
	}
}
