package graphql

import (
	"net/http"
	"time"

	"github.com/saturnines/karambit/pkg/auth"
)

// BuilderOption mutates a Builder before it builds requests.
type BuilderOption func(*Builder)

// ApplyOptions runs opts against b, later options winning.
func (b *Builder) ApplyOptions(opts ...BuilderOption) {
	for _, opt := range opts {
		opt(b)
	}
}

// Derive returns a new Builder carrying b's endpoint, headers and auth
// handler. Header and variable maps are copied, so the result can be
// changed without touching b.
func (b *Builder) Derive(opts ...BuilderOption) *Builder {
	d := &Builder{}
	d.ApplyOptions(
		WithEndpoint(b.Endpoint),
		WithHeaders(b.Headers),
		WithAuthHandler(b.AuthHandler),
	)
	d.ApplyOptions(opts...)
	return d
}

func WithEndpoint(url string) BuilderOption {
	return func(b *Builder) { b.Endpoint = url }
}

func WithQuery(query string) BuilderOption {
	return func(b *Builder) { b.Query = query }
}

// WithOperationName selects the operation to run when the document
// defines more than one.
func WithOperationName(name string) BuilderOption {
	return func(b *Builder) { b.OperationName = name }
}

// WithAuthHandler sets the handler that signs each request after the
// plain headers are applied, so it overrides any Authorization header.
func WithAuthHandler(h auth.Handler) BuilderOption {
	return func(b *Builder) { b.AuthHandler = h }
}

func WithHeader(key, value string) BuilderOption {
	return WithHeaders(map[string]string{key: value})
}

// WithHeaders merges headers into the builder's own map.
func WithHeaders(headers map[string]string) BuilderOption {
	return func(b *Builder) {
		if len(headers) == 0 {
			return
		}
		if b.Headers == nil {
			b.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			b.Headers[k] = v
		}
	}
}

func WithVariable(name string, value interface{}) BuilderOption {
	return WithVariables(map[string]interface{}{name: value})
}

// WithVariables merges variables into the builder's own map.
func WithVariables(variables map[string]interface{}) BuilderOption {
	return func(b *Builder) {
		if len(variables) == 0 {
			return
		}
		if b.Variables == nil {
			b.Variables = make(map[string]interface{}, len(variables))
		}
		for k, v := range variables {
			b.Variables[k] = v
		}
	}
}

// ClientOption mutates a Client at construction.
type ClientOption func(*Client)

// ApplyOptions runs opts against c in order.
func (c *Client) ApplyOptions(opts ...ClientOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithHTTPDoer replaces the doer. nil is ignored.
func WithHTTPDoer(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.doer = doer
		}
	}
}

// WithTimeout gives the client's *http.Client a request timeout. The
// client is copied first; the caller's *http.Client (http.DefaultClient
// included) keeps its own Timeout. Other doers are left alone.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		httpClient, ok := c.doer.(*http.Client)
		if !ok {
			return
		}
		cp := *httpClient
		cp.Timeout = timeout
		c.doer = &cp
	}
}
