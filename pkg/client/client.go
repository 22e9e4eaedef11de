// Package client connects to a running engine session.
//
// InstantiateClient turns a config.Session into a Client addressing
// http://127.0.0.1:<port>/query with an "Authorization: Basic <token>"
// header. It does no I/O. NewFromEnv does the same from
// DAGGER_SESSION_PORT and DAGGER_SESSION_TOKEN.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"

	"github.com/saturnines/karambit/pkg/auth"
	"github.com/saturnines/karambit/pkg/config"
	"github.com/saturnines/karambit/pkg/errors"
	"github.com/saturnines/karambit/pkg/transport/graphql"
	"go.uber.org/zap"
)

// Client sends GraphQL operations to one engine session.
type Client struct {
	endpoint string
	header   string
	base     *graphql.Builder
	gql      *graphql.Client
	logger   *zap.Logger
}

// InstantiateClient builds a Client for session. It fails with
// errors.ErrMissingConfiguration when the port or token is empty and
// returns no client in that case.
func InstantiateClient(session config.Session, opts ...Option) (*Client, error) {
	if err := config.ValidateSession(&session); err != nil {
		return nil, err
	}

	handler, err := auth.CreateHandler(&session)
	if err != nil {
		return nil, err
	}
	provider, ok := handler.(auth.HeaderProvider)
	if !ok {
		return nil, errors.WrapError(
			fmt.Errorf("%T does not provide an Authorization header", handler),
			errors.ErrConfiguration,
			"instantiate client",
		)
	}
	header, err := provider.Header()
	if err != nil {
		return nil, err
	}

	s := newSettings(opts)
	endpoint := Endpoint(&session)

	base := graphql.NewBuilder(endpoint, "", nil, nil, handler)
	base.ApplyOptions(s.builderOpts...)

	return &Client{
		endpoint: endpoint,
		header:   header,
		base:     base,
		gql:      graphql.NewClient(nil, s.transport()...),
		logger:   s.logger,
	}, nil
}

// NewFromEnv reads the session from the process environment and
// instantiates a client for it.
func NewFromEnv(opts ...Option) (*Client, error) {
	session, err := config.SessionFromEnv(nil)
	if err != nil {
		return nil, err
	}
	return InstantiateClient(*session, opts...)
}

// Endpoint computes the query URL of session.
func Endpoint(session *config.Session) string {
	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(session.HostOrDefault(), session.Port),
		Path:   session.PathOrDefault(),
	}
	return u.String()
}

// Endpoint is the URL queries are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// AuthorizationHeader is the Authorization value sent with every request.
func (c *Client) AuthorizationHeader() string {
	return c.header
}

// Query sends op and decodes its data into out. Transport errors are
// returned unchanged.
func (c *Client) Query(ctx context.Context, op graphql.Operation, out interface{}) error {
	b := graphql.BuilderFor(c.base, op)
	_, err := c.do(ctx, b, out)
	return err
}

// Raw sends an untyped document and returns its data as is.
func (c *Client) Raw(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	b := c.base.Derive(graphql.WithQuery(query), graphql.WithVariables(variables))

	resp, err := c.do(ctx, b, nil)
	if resp == nil {
		return nil, err
	}
	return resp.Data, err
}

func (c *Client) do(ctx context.Context, b *graphql.Builder, out interface{}) (*graphql.Response, error) {
	log := c.logger.With(
		zap.String("endpoint", c.endpoint),
		zap.String("operation", b.OperationName),
	)
	log.Debug("sending graphql request")

	resp, err := c.gql.Do(ctx, b, out)
	if err != nil {
		log.Debug("graphql request failed", zap.Error(err))
		return resp, err
	}

	log.Debug("graphql request done", zap.Int("bytes", len(resp.Data)))
	return resp, nil
}
