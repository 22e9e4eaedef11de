package auth

import (
	"fmt"
	"sync"

	"github.com/saturnines/karambit/pkg/config"
	"github.com/saturnines/karambit/pkg/errors"
)

// AuthCreator defines a function that creates an auth handler from a session
type AuthCreator func(*config.Session) (Handler, error)

// AuthRegistry maintains a registry of auth handler creators
type AuthRegistry struct {
	creators map[config.AuthType]AuthCreator
	mutex    sync.RWMutex
}

// NewAuthRegistry creates a new auth registry with default handlers
func NewAuthRegistry() *AuthRegistry {
	registry := &AuthRegistry{
		creators: make(map[config.AuthType]AuthCreator),
	}

	registry.Register(config.AuthTypeSession, createSessionTokenAuth)
	registry.Register(config.AuthTypeBasic, createBasicAuth)
	registry.Register(config.AuthTypeBearer, createBearerAuth)
	return registry
}

// Register adds a new auth creator to the registry
func (r *AuthRegistry) Register(authType config.AuthType, creator AuthCreator) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.creators[authType] = creator
}

// Create creates an auth handler based on the session's auth type
func (r *AuthRegistry) Create(session *config.Session) (Handler, error) {
	if session == nil {
		return nil, errors.WrapError(
			fmt.Errorf("session is nil"),
			errors.ErrMissingConfiguration,
			"create auth handler",
		)
	}

	authType := session.AuthTypeOrDefault()

	r.mutex.RLock()
	creator, exists := r.creators[authType]
	r.mutex.RUnlock()

	if !exists {
		return nil, errors.WrapError(
			fmt.Errorf("unsupported auth type: %s", authType),
			errors.ErrConfiguration,
			"invalid auth type",
		)
	}

	return creator(session)
}

var defaultRegistry = NewAuthRegistry()

// CreateHandler creates an auth handler using the default registry
func CreateHandler(session *config.Session) (Handler, error) {
	return defaultRegistry.Create(session)
}

// RegisterAuthHandler allows registering custom auth handlers to the default registry
func RegisterAuthHandler(authType config.AuthType, creator AuthCreator) {
	defaultRegistry.Register(authType, creator)
}
