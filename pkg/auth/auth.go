package auth

import (
	"fmt"
	"net/http"

	"github.com/saturnines/karambit/pkg/errors"
)

// Handler defines the interface for auth handlers
type Handler interface {
	ApplyAuth(req *http.Request) error
}

// HeaderProvider is implemented by handlers that authorize with a single
// Authorization header value.
type HeaderProvider interface {
	Header() (string, error)
}

// SessionTokenAuth authorizes against an engine session.
// The token is placed after "Basic " as is, without base64 encoding and
// without a user part. The engine matches on that literal value.
type SessionTokenAuth struct {
	Token string
}

// NewSessionTokenAuth creates a new session token handler
func NewSessionTokenAuth(token string) *SessionTokenAuth {
	return &SessionTokenAuth{Token: token}
}

// Header returns the Authorization header value
func (s *SessionTokenAuth) Header() (string, error) {
	if s.Token == "" {
		return "", errors.WrapError(
			fmt.Errorf("token is required"),
			errors.ErrMissingConfiguration,
			"apply session auth",
		)
	}
	return "Basic " + s.Token, nil
}

// ApplyAuth sets the Authorization header on req
func (s *SessionTokenAuth) ApplyAuth(req *http.Request) error {
	h, err := s.Header()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", h)
	return nil
}

// String returns a string representation of this auth method
func (s *SessionTokenAuth) String() string {
	return "SessionTokenAuth(token: [REDACTED])"
}
