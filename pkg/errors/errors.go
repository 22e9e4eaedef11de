package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Standard error types
var (
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrConfiguration        = errors.New("configuration error")
	ErrAuthentication       = errors.New("authentication error")
	ErrHTTPRequest          = errors.New("HTTP request error")
	ErrHTTPResponse         = errors.New("HTTP response error")
	ErrGraphQL              = errors.New("graphql error")
	ErrValidation           = errors.New("validation error")
)

// WrapError wraps an error with a standard error type.
// Both errType and err stay reachable through errors.Is and errors.As.
func WrapError(err error, errType error, message string) error {
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// Wrap annotates err with a message and a stack trace. It returns nil if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As provides a convenience wrapper around errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap provides a convenience wrapper around errors.Unwrap
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
