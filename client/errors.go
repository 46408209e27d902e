package client

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/adarsh5347/impacthub-client/internal/errors"
)

// genericFailureMessage is the last-resort text shown when nothing better is
// known about a failure.
const genericFailureMessage = "Something went wrong. Please try again."

// APIError is a failure reported by the backend. Message and Reason mirror
// the backend's "message" and "error" response fields.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Reason  string `json:"error"`
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	case e.Reason != "":
		return fmt.Sprintf("http %d: %s", e.Status, e.Reason)
	default:
		return fmt.Sprintf("http %d", e.Status)
	}
}

// Unwrap maps the status to a sentinel so callers can branch with errors.Is
// without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.Status >= http.StatusInternalServerError:
		return apperrors.ErrUnavailable
	default:
		return apperrors.ErrInternal
	}
}

// Message reduces any failure into a single human-readable string so every
// UI surface presents errors uniformly: the server-supplied message first,
// then the server-supplied error field, then the raw transport error text,
// then a generic fallback.
func Message(err error) string {
	if err == nil {
		return genericFailureMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Reason != "" {
			return apiErr.Reason
		}
		return fmt.Sprintf("The server could not handle the request (status %d)", apiErr.Status)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericFailureMessage
}
