package config

import (
	"testing"

	"github.com/saturnines/karambit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLoader_ValidMinimalConfig(t *testing.T) {
	yamlContent := `
port: "51234"
token: abc123
`
	loader := NewSessionLoader(&EnvExpander{}, &SessionDefaults{})

	session, err := loader.Parse([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "51234", session.Port)
	assert.Equal(t, "abc123", session.Token)
	assert.Equal(t, DefaultHost, session.Host)
	assert.Equal(t, DefaultPath, session.Path)
	assert.Equal(t, AuthTypeSession, session.AuthType)
}

func TestSessionLoader_ExpandsEnvironment(t *testing.T) {
	t.Setenv("KARAMBIT_TEST_PORT", "7000")
	t.Setenv("KARAMBIT_TEST_TOKEN", "expanded")

	yamlContent := `
port: "${KARAMBIT_TEST_PORT}"
token: ${KARAMBIT_TEST_TOKEN}
auth_type: bearer
`
	loader := NewSessionLoader(&EnvExpander{}, &SessionDefaults{})

	session, err := loader.Parse([]byte(yamlContent))
	require.NoError(t, err)
	assert.Equal(t, "7000", session.Port)
	assert.Equal(t, "expanded", session.Token)
	assert.Equal(t, AuthTypeBearer, session.AuthType)
}

func TestSessionLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing token",
			yaml:    `port: "51234"`,
			wantErr: errors.ErrMissingConfiguration,
			wantMsg: "token: is required",
		},
		{
			name:    "missing port",
			yaml:    `token: abc123`,
			wantErr: errors.ErrMissingConfiguration,
			wantMsg: "port: is required",
		},
		{
			name:    "non numeric port",
			yaml:    "port: http\ntoken: abc123",
			wantErr: errors.ErrConfiguration,
			wantMsg: "must be a decimal integer",
		},
		{
			name:    "port out of range",
			yaml:    "port: \"70000\"\ntoken: abc123",
			wantErr: errors.ErrConfiguration,
			wantMsg: "between 1 and 65535",
		},
		{
			name:    "token with line break",
			yaml:    "port: \"51234\"\ntoken: \"abc\\r\\nX-Injected: 1\"",
			wantErr: errors.ErrConfiguration,
			wantMsg: "not allowed in an HTTP header",
		},
		{
			name:    "malformed yaml",
			yaml:    "port: [",
			wantErr: errors.ErrConfiguration,
			wantMsg: "parse session YAML",
		},
	}

	loader := NewSessionLoader(nil, &SessionDefaults{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := loader.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, session)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateSession(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		err := ValidateSession(nil)
		assert.True(t, errors.Is(err, errors.ErrMissingConfiguration))
	})

	t.Run("MissingWinsOverMalformed", func(t *testing.T) {
		err := ValidateSession(&Session{Port: "abc"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMissingConfiguration))
		assert.False(t, errors.Is(err, errors.ErrConfiguration))
	})

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateSession(&Session{Port: "1", Token: "t"}))
	})
}

func TestLoad_MissingFile(t *testing.T) {
	loader := NewSessionLoader(nil, nil)
	_, err := loader.Load("does/not/exist.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestPortValidator(t *testing.T) {
	tests := []struct {
		port  string
		valid bool
	}{
		{"1", true},
		{"51234", true},
		{"65535", true},
		{"+51234", false},
		{"-1", false},
		{"051234", false},
		{"00", false},
		{"0", false},
		{"65536", false},
		{" 80", false},
		{"80 ", false},
		{"0x50", false},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			errs := (&PortValidator{}).Validate(&Session{Port: tt.port})
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "port", errs[0].Field)
			assert.False(t, errs[0].Missing)
		})
	}
}

func TestTokenValidator(t *testing.T) {
	assert.Empty(t, (&TokenValidator{}).Validate(&Session{Token: "abc123"}))
	assert.Empty(t, (&TokenValidator{}).Validate(&Session{Token: "with spaces\tand tab"}))
	assert.Empty(t, (&TokenValidator{}).Validate(&Session{}))

	for _, token := range []string{"abc\r\nX-Injected: 1", "abc\n", "nul\x00"} {
		errs := (&TokenValidator{}).Validate(&Session{Token: token})
		require.Len(t, errs, 1, "%q", token)
		assert.Equal(t, "token", errs[0].Field)
	}
}
