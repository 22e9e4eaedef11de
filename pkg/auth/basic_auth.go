package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/saturnines/karambit/pkg/errors"
)

// BasicAuth implements the interface for HTTP basic authentication
type BasicAuth struct {
	Username string // Username for Basic auth
	Password string // Password for Basic auth
}

// NewBasicAuth creates a new basic authentication handler
func NewBasicAuth(username, password string) *BasicAuth {
	return &BasicAuth{
		Username: username,
		Password: password,
	}
}

// Header returns the encoded "Basic" header value
func (b *BasicAuth) Header() (string, error) {
	if b.Username == "" {
		return "", errors.WrapError(
			fmt.Errorf("username is required"),
			errors.ErrConfiguration,
			"apply basic auth",
		)
	}
	// password may be empty

	authStr := b.Username + ":" + b.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(authStr)), nil
}

// ApplyAuth adds the basic auth header to the request
func (b *BasicAuth) ApplyAuth(req *http.Request) error {
	h, err := b.Header()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", h)
	return nil
}

// String returns a string representation of this auth method for testing
func (b *BasicAuth) String() string {
	return fmt.Sprintf("BasicAuth(username: %s)", b.Username)
}
