package graphql

import (
	"context"
	"net/http"
)

// HTTPDoer is the minimal interface the client needs from *http.Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Operation is a typed GraphQL operation.
type Operation interface {
	Document() string
	OperationName() string
	Variables() map[string]interface{}
}

// Client executes GraphQL operations.
type Client struct {
	doer HTTPDoer
}

// NewClient wraps an HTTPDoer (e.g. *http.Client).
// A nil doer gets a plain *http.Client with no timeout.
func NewClient(doer HTTPDoer, opts ...ClientOption) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	c := &Client{doer: doer}
	c.ApplyOptions(opts...)
	return c
}

// Execute sends a built request. Transport errors are returned as is.
func (c *Client) Execute(req *http.Request) (*http.Response, error) {
	return c.doer.Do(req)
}

// Do builds, sends and decodes one request, unmarshalling data into out.
func (c *Client) Do(ctx context.Context, b *Builder, out interface{}) (*Response, error) {
	req, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.Execute(req)
	if err != nil {
		return nil, err
	}
	return Decode(resp, out)
}

// BuilderFor returns a builder for op sharing base's endpoint, headers and auth.
func BuilderFor(base *Builder, op Operation) *Builder {
	return base.Derive(
		WithQuery(op.Document()),
		WithOperationName(op.OperationName()),
		WithVariables(op.Variables()),
	)
}
