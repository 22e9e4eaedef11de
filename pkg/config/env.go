package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/saturnines/karambit/pkg/errors"
)

// LookupFunc reads a single variable, reporting whether it was set
type LookupFunc func(key string) (string, bool)

// SessionFromEnv reads the session port and token through lookup.
// A nil lookup reads the process environment. Unset and empty values are
// both treated as missing, and nothing is defaulted.
func SessionFromEnv(lookup LookupFunc) (*Session, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missing []string
	port, ok := lookup(EnvSessionPort)
	if !ok || port == "" {
		missing = append(missing, EnvSessionPort)
	}
	token, ok := lookup(EnvSessionToken)
	if !ok || token == "" {
		missing = append(missing, EnvSessionToken)
	}

	if len(missing) > 0 {
		return nil, errors.WrapError(
			fmt.Errorf("%s doesn't exist", strings.Join(missing, ", ")),
			errors.ErrMissingConfiguration,
			"read session from environment",
		)
	}

	return &Session{Port: port, Token: token}, nil
}

// MapLookup adapts a map into a LookupFunc
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// LoadDotEnv loads .env style files into the process environment.
// Variables that are already set are left alone. With no paths it reads ./.env.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.WrapError(err, errors.ErrConfiguration, "load dotenv")
	}
	return nil
}
