package errors

import (
	"errors"
	"fmt"
)

// Common error types for the ImpactHub client core. Transport failures
// reported by the client package unwrap to these, so callers can branch with
// errors.Is without knowing the response shape.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("service unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInternal          = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
