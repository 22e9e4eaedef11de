package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/saturnines/karambit/pkg/auth"
	"github.com/saturnines/karambit/pkg/errors"
)

// Request is the JSON body of a GraphQL HTTP request.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Builder constructs GraphQL requests.
type Builder struct {
	Endpoint      string
	Query         string
	OperationName string
	Variables     map[string]interface{}
	Headers       map[string]string
	AuthHandler   auth.Handler
}

// NewBuilder sets up a GraphQL Builder.
// Endpoint is the full URL of your GraphQL endpoint.
func NewBuilder(
	endpoint, query string,
	variables map[string]interface{},
	headers map[string]string,
	authHandler auth.Handler,
) *Builder {
	return &Builder{
		Endpoint:    endpoint,
		Query:       query,
		Variables:   variables,
		Headers:     headers,
		AuthHandler: authHandler,
	}
}

// Body parses the query document and returns the request body.
// The operation name is inferred when the document holds a single operation.
func (b *Builder) Body() (*Request, error) {
	doc, err := ParseDocument(b.Query)
	if err != nil {
		return nil, err
	}
	name, err := SelectOperation(doc, b.OperationName)
	if err != nil {
		return nil, err
	}
	return &Request{
		Query:         b.Query,
		OperationName: name,
		Variables:     b.Variables,
	}, nil
}

// Build creates the *http.Request with JSON body.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	body, err := b.Body()
	if err != nil {
		return nil, err
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPRequest, "marshal graphql request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPRequest, "create graphql request")
	}
	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if b.AuthHandler != nil {
		if err := b.AuthHandler.ApplyAuth(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}
