// Package enginetest runs an in-process stand-in for an engine session:
// a GraphQL endpoint on 127.0.0.1 that only answers requests carrying the
// session's Authorization header.
package enginetest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/saturnines/karambit/pkg/config"
)

// Schema is the slice of the engine schema the fake serves.
const Schema = `
	schema {
		query: Query
	}

	type Query {
		defaultPlatform: String!
		version: String!
		container: Container!
		broken: String
	}

	type Container {
		from(address: String!): Container!
		withExec(args: [String!]!): Container!
		stdout: String!
	}
`

// Defaults returned by the fake engine
const (
	Platform = "linux/amd64"
	Version  = "v0.9.3"
)

// Engine is a running fake engine session.
type Engine struct {
	Token  string
	server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// Start launches a fake engine that accepts token. Callers must Close it.
func Start(token string) *Engine {
	e := &Engine{Token: token}

	schema := graphqlgo.MustParseSchema(Schema, &queryResolver{})
	mux := http.NewServeMux()
	mux.Handle("/query", e.authorize(&relay.Handler{Schema: schema}))

	e.server = httptest.NewServer(mux)
	return e
}

// Close shuts the server down.
func (e *Engine) Close() {
	e.server.Close()
}

// Port is the decimal port the engine listens on.
func (e *Engine) Port() string {
	u, err := url.Parse(e.server.URL)
	if err != nil {
		panic(fmt.Sprintf("enginetest: bad server URL %q: %v", e.server.URL, err))
	}
	return u.Port()
}

// Session returns connection parameters pointing at this engine.
func (e *Engine) Session() config.Session {
	return config.Session{Port: e.Port(), Token: e.Token}
}

// Env returns the environment a session-spawned process would see.
func (e *Engine) Env() map[string]string {
	return map[string]string{
		config.EnvSessionPort:  e.Port(),
		config.EnvSessionToken: e.Token,
	}
}

// Requests returns clones of the requests received so far.
func (e *Engine) Requests() []*http.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*http.Request, len(e.requests))
	copy(out, e.requests)
	return out
}

func (e *Engine) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.mu.Lock()
		e.requests = append(e.requests, r.Clone(context.Background()))
		e.mu.Unlock()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Basic "+e.Token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type queryResolver struct{}

func (*queryResolver) DefaultPlatform() string { return Platform }

func (*queryResolver) Version() string { return Version }

func (*queryResolver) Container() *containerResolver { return &containerResolver{} }

func (*queryResolver) Broken() (*string, error) {
	return nil, fmt.Errorf("engine exploded")
}

type containerResolver struct {
	address string
	args    []string
}

func (c *containerResolver) From(args struct{ Address string }) *containerResolver {
	return &containerResolver{address: args.Address}
}

func (c *containerResolver) WithExec(args struct{ Args []string }) *containerResolver {
	return &containerResolver{address: c.address, args: args.Args}
}

// Stdout fakes running args in the container: "echo" prints its operands.
func (c *containerResolver) Stdout() string {
	if len(c.args) > 0 && c.args[0] == "echo" {
		return strings.Join(c.args[1:], " ") + "\n"
	}
	return ""
}
