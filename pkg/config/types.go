package config

// Environment variables the engine exports to every process it starts.
const (
	EnvSessionPort  = "DAGGER_SESSION_PORT"
	EnvSessionToken = "DAGGER_SESSION_TOKEN"
)

// Defaults used to address a local engine session
const (
	DefaultHost = "127.0.0.1"
	DefaultPath = "/query"
)

// Session holds the connection parameters of one engine session
type Session struct {
	Port     string   `yaml:"port"`                // Required: decimal TCP port
	Token    string   `yaml:"token"`               // Required: opaque session token
	Host     string   `yaml:"host,omitempty"`      // Optional, defaults to 127.0.0.1
	Path     string   `yaml:"path,omitempty"`      // Optional, defaults to /query
	AuthType AuthType `yaml:"auth_type,omitempty"` // Optional, defaults to session
}

// AuthType defines the supported authorization schemes
type AuthType string

const (
	// AuthTypeSession sends the token verbatim as "Basic <token>".
	AuthTypeSession AuthType = "session"
	// AuthTypeBasic sends the token as an RFC 7617 username with an empty password.
	AuthTypeBasic  AuthType = "basic"
	AuthTypeBearer AuthType = "bearer"
)

// HostOrDefault returns the configured host or DefaultHost
func (s *Session) HostOrDefault() string {
	if s.Host == "" {
		return DefaultHost
	}
	return s.Host
}

// PathOrDefault returns the configured path or DefaultPath
func (s *Session) PathOrDefault() string {
	if s.Path == "" {
		return DefaultPath
	}
	return s.Path
}

// AuthTypeOrDefault returns the configured auth type or AuthTypeSession
func (s *Session) AuthTypeOrDefault() AuthType {
	if s.AuthType == "" {
		return AuthTypeSession
	}
	return s.AuthType
}
