package client

import (
	"time"

	"github.com/saturnines/karambit/pkg/transport/graphql"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*settings)

type settings struct {
	logger      *zap.Logger
	builderOpts []graphql.BuilderOption
	clientOpts  []graphql.ClientOption
	timeout     time.Duration
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// transport returns the client options with the timeout last, so it
// lands on whichever doer was chosen.
func (s *settings) transport() []graphql.ClientOption {
	if s.timeout <= 0 {
		return s.clientOpts
	}
	return append(s.clientOpts, graphql.WithTimeout(s.timeout))
}

// WithHTTPDoer sends requests through doer instead of a fresh *http.Client.
func WithHTTPDoer(doer graphql.HTTPDoer) Option {
	return func(s *settings) {
		s.clientOpts = append(s.clientOpts, graphql.WithHTTPDoer(doer))
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHeader adds a header to every request. Authorization and
// Content-Type are always overwritten.
func WithHeader(key, value string) Option {
	return func(s *settings) {
		s.builderOpts = append(s.builderOpts, graphql.WithHeader(key, value))
	}
}

// WithTimeout bounds each request when the doer is an *http.Client. A
// doer passed with WithHTTPDoer is copied, not modified. Without this
// option requests wait until the engine answers.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}
