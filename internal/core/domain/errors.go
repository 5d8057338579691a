package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrServer          = errors.New("server error")

	// ErrRequestFailed is the generic failure surfaced by wrappers that do
	// not interpret status codes (the identity client).
	ErrRequestFailed = errors.New("request failed")
)

// ErrorFromStatus maps an HTTP status code to the error taxonomy. Returns nil
// for any 2xx. Codes outside the distinguished set degrade to ErrRequestFailed
// so callers always get something errors.Is can classify.
func ErrorFromStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return ErrUnauthenticated
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code >= 500:
		return ErrServer
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, code)
	}
}

// ValidationError reports client-side form constraints unmet before
// submission. It blocks the request from being sent at all and is fully
// recoverable by correcting input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Problems, "; ")
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
