package auth

import (
	"fmt"

	"github.com/saturnines/karambit/pkg/config"
	"github.com/saturnines/karambit/pkg/errors"
)

// Creator functions for auth handlers

func createSessionTokenAuth(session *config.Session) (Handler, error) {
	if session.Token == "" {
		return nil, missingToken("create session auth")
	}
	return NewSessionTokenAuth(session.Token), nil
}

func createBasicAuth(session *config.Session) (Handler, error) {
	if session.Token == "" {
		return nil, missingToken("create basic auth")
	}
	return NewBasicAuth(session.Token, ""), nil
}

func createBearerAuth(session *config.Session) (Handler, error) {
	if session.Token == "" {
		return nil, missingToken("create bearer auth")
	}
	return NewBearerAuth(session.Token), nil
}

func missingToken(op string) error {
	return errors.WrapError(
		fmt.Errorf("session token is required"),
		errors.ErrMissingConfiguration,
		op,
	)
}
