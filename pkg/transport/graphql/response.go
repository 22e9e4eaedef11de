package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saturnines/karambit/pkg/errors"
)

// maxErrorBody caps how much of a non-2xx body ends up in an HTTPError.
const maxErrorBody = 4 << 10

// Response is the JSON body of a GraphQL HTTP response.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors,omitempty"`
}

// Location points into the query document
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is a single entry of a response's "errors" list
type Error struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "."), e.Message)
}

// Errors is the "errors" list of a response
type Errors []*Error

func (l Errors) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// HTTPError wraps HTTP error responses
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s: %s", e.StatusCode, e.Status, e.Body)
}

// Decode reads resp and unmarshals its data into out. It closes the body.
// Non-2xx statuses yield an *HTTPError, a non-empty "errors" list yields
// Errors. data is still decoded into out when errors accompany it.
func Decode(resp *http.Response, out interface{}) (*Response, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPResponse, "read graphql response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := bytes.TrimSpace(raw)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode), Body: string(body)}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, errors.WrapError(httpErr, errors.ErrAuthentication, "graphql request rejected")
		}
		return nil, errors.WrapError(httpErr, errors.ErrHTTPResponse, "graphql request failed")
	}

	var gqlResp Response
	if err := json.Unmarshal(raw, &gqlResp); err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPResponse, "decode graphql response")
	}

	if out != nil && len(gqlResp.Data) > 0 && !bytes.Equal(gqlResp.Data, []byte("null")) {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return &gqlResp, errors.WrapError(err, errors.ErrHTTPResponse, "decode graphql data")
		}
	}

	if len(gqlResp.Errors) > 0 {
		return &gqlResp, errors.WrapError(gqlResp.Errors, errors.ErrGraphQL, "graphql response")
	}

	return &gqlResp, nil
}
