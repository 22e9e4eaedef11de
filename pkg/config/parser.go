package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/saturnines/karambit/pkg/errors"
	"golang.org/x/net/http/httpguts"
	"gopkg.in/yaml.v3"
)

// ValidationError reports one problem with one Session field
type ValidationError struct {
	Field   string
	Message string
	Missing bool // set when the field is absent rather than malformed
}

// Validator checks one aspect of a Session
type Validator interface {
	Validate(session *Session) []ValidationError
}

// Error returns "field: message"
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultValueSetter fills optional fields
type DefaultValueSetter interface {
	SetDefaults(session *Session)
}

// VariableExpander defines the interface for expanding variables
type VariableExpander interface {
	Expand(data []byte) []byte
}

// EnvExpander implements VariableExpander using environment variables
type EnvExpander struct{}

// Expand expands environment variables with the given data
func (e *EnvExpander) Expand(data []byte) []byte {
	expanded := os.Expand(string(data), os.Getenv)
	return []byte(expanded)
}

// DefaultValidators is the validator set applied to every session
func DefaultValidators() []Validator {
	return []Validator{
		&RequiredFieldValidator{},
		&PortValidator{},
		&TokenValidator{},
	}
}

// ValidateSession runs validators against s. Missing fields take precedence
// and produce ErrMissingConfiguration; anything else is ErrConfiguration.
func ValidateSession(s *Session, validators ...Validator) error {
	if s == nil {
		return errors.WrapError(fmt.Errorf("session is nil"), errors.ErrMissingConfiguration, "validate session")
	}
	if len(validators) == 0 {
		validators = DefaultValidators()
	}

	var all []ValidationError
	for _, v := range validators {
		all = append(all, v.Validate(s)...)
	}
	if len(all) == 0 {
		return nil
	}

	for _, ve := range all {
		if ve.Missing {
			return errors.WrapError(fmt.Errorf("%v", missingOnly(all)), errors.ErrMissingConfiguration, "validate session")
		}
	}
	return errors.WrapError(fmt.Errorf("%v", all), errors.ErrConfiguration, "validate session")
}

func missingOnly(all []ValidationError) []ValidationError {
	var out []ValidationError
	for _, ve := range all {
		if ve.Missing {
			out = append(out, ve)
		}
	}
	return out
}

// SessionLoader reads a Session from a YAML document
type SessionLoader struct {
	expander      VariableExpander
	validators    []Validator
	defaultSetter DefaultValueSetter
}

// NewSessionLoader creates a new SessionLoader with the given components.
// With no validators the DefaultValidators are used.
func NewSessionLoader(
	expander VariableExpander,
	defaultSetter DefaultValueSetter,
	validators ...Validator,
) *SessionLoader {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	return &SessionLoader{
		expander:      expander,
		validators:    validators,
		defaultSetter: defaultSetter,
	}
}

// Load a session config from a YAML file
func (l *SessionLoader) Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "read session file")
	}

	return l.Parse(data)
}

// Parse parses a yaml session config
func (l *SessionLoader) Parse(data []byte) (*Session, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "parse session YAML")
	}

	if l.defaultSetter != nil {
		l.defaultSetter.SetDefaults(&session)
	}

	if err := ValidateSession(&session, l.validators...); err != nil {
		return nil, err
	}

	return &session, nil
}

// SessionDefaults implements DefaultValueSetter for Session
type SessionDefaults struct{}

// SetDefaults fills host, path and auth type
func (d *SessionDefaults) SetDefaults(session *Session) {
	if session.Host == "" {
		session.Host = DefaultHost
	}
	if session.Path == "" {
		session.Path = DefaultPath
	}
	if session.AuthType == "" {
		session.AuthType = AuthTypeSession
	}
}

// RequiredFieldValidator checks that port and token are present
type RequiredFieldValidator struct{}

// Validate checks that all required fields are present
func (v *RequiredFieldValidator) Validate(session *Session) []ValidationError {
	var errs []ValidationError

	if session.Port == "" {
		errs = append(errs, ValidationError{Field: "port", Message: "is required", Missing: true})
	}
	if session.Token == "" {
		errs = append(errs, ValidationError{Field: "token", Message: "is required", Missing: true})
	}

	return errs
}

// PortValidator checks that the port is a decimal TCP port
type PortValidator struct{}

// Validate skips an empty port; RequiredFieldValidator reports that
func (v *PortValidator) Validate(session *Session) []ValidationError {
	if session.Port == "" {
		return nil
	}

	// ParseUint rejects signs; a leading zero would make the endpoint
	// text differ from the port actually dialed.
	port, err := strconv.ParseUint(session.Port, 10, 16)
	if err != nil || (len(session.Port) > 1 && session.Port[0] == '0') {
		return []ValidationError{{Field: "port", Message: fmt.Sprintf("must be a decimal integer between 1 and 65535, got %q", session.Port)}}
	}
	if port < 1 {
		return []ValidationError{{Field: "port", Message: fmt.Sprintf("must be between 1 and 65535, got %d", port)}}
	}

	return nil
}

// TokenValidator checks that the token can travel in an HTTP header
type TokenValidator struct{}

// Validate skips an empty token; RequiredFieldValidator reports that
func (v *TokenValidator) Validate(session *Session) []ValidationError {
	if session.Token == "" {
		return nil
	}
	if !httpguts.ValidHeaderFieldValue(session.Token) {
		return []ValidationError{{Field: "token", Message: "contains characters not allowed in an HTTP header"}}
	}
	return nil
}
