package auth

import (
	"fmt"
	"net/http"

	"github.com/saturnines/karambit/pkg/errors"
)

// BearerAuth implements the interface for Bearer token authentication
type BearerAuth struct {
	Token string // The bearer token
}

// NewBearerAuth creates a new bearer token authentication handler
func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{
		Token: token,
	}
}

// Header returns the "Bearer" header value
func (b *BearerAuth) Header() (string, error) {
	if b.Token == "" {
		return "", errors.WrapError(
			fmt.Errorf("token is required"),
			errors.ErrConfiguration,
			"apply bearer auth",
		)
	}
	return "Bearer " + b.Token, nil
}

// ApplyAuth adds the Bearer token to the Authorization header
func (b *BearerAuth) ApplyAuth(req *http.Request) error {
	h, err := b.Header()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", h)
	return nil
}

// String returns a string representation of this auth method for testing
func (b *BearerAuth) String() string {
	// There is no need to actually put the actual token
	return "BearerAuth(token: [REDACTED])"
}
