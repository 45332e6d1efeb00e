package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mallcloud/mallctl/internal/ports"
)

// maxResponseBytes bounds how much of a response body is decoded (1MB).
const maxResponseBytes = 1 << 20

// Envelope result codes the pipeline interprets. Any other non-OK code is
// an application-level failure whose message is surfaced verbatim.
const (
	envelopeCodeOK              = 200
	envelopeCodeUnauthenticated = 401
)

// envelope is the uniform wrapper every mall API response uses, independent
// of HTTP status.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Session is what the pipeline needs from the session store: the current
// token for outbound requests, and invalidation for the authentication
// failure cascade.
type Session interface {
	Token() string
	Invalidate(ctx context.Context) (bool, error)
}

// Client mediates every call to the mall API. It attaches the bearer token
// on the way out and classifies the exchange on the way back, running the
// session invalidation cascade before any authentication error reaches the
// caller.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	session   Session
	navigator ports.Navigator
}

func NewClient(baseURL string, httpClient *http.Client, session Session, navigator ports.Navigator) (*Client, error) {
	if session == nil {
		return nil, errors.New("session store is required")
	}

	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:   parsed,
		http:      httpClient,
		session:   session,
		navigator: navigator,
	}, nil
}

// get performs a GET request and decodes the envelope payload into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: nothing to classify further, session state
		// is left untouched.
		return &Error{Kind: ErrTransport, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	return c.classify(ctx, resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + path
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// classify applies the precedence order: authentication failure, then other
// status-code failures, then envelope-level failure, then success. A 200
// carrying an unauthenticated envelope code still runs the cascade, so the
// session is never left live on an expired token.
func (c *Client) classify(ctx context.Context, resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		env, _ := decodeEnvelope(resp.Body)
		return c.cascade(ctx, resp.StatusCode, env)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		env, _ := decodeEnvelope(resp.Body)
		return &Error{
			Kind:    statusKind(resp.StatusCode),
			Status:  resp.StatusCode,
			Code:    env.Code,
			Message: env.Message,
		}
	}

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return &Error{Kind: ErrApplication, Status: resp.StatusCode, cause: err}
	}

	switch env.Code {
	case envelopeCodeOK:
	case envelopeCodeUnauthenticated:
		return c.cascade(ctx, resp.StatusCode, env)
	default:
		return &Error{
			Kind:    ErrApplication,
			Status:  resp.StatusCode,
			Code:    env.Code,
			Message: env.Message,
		}
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: ErrApplication, Status: resp.StatusCode, cause: fmt.Errorf("decode payload: %w", err)}
	}

	return nil
}

// cascade clears the session and redirects to the login surface, in that
// order. The redirect fires only when a live session was actually cleared,
// so concurrent failing calls produce a single redirect.
func (c *Client) cascade(ctx context.Context, status int, env envelope) error {
	cleared, err := c.session.Invalidate(ctx)
	if cleared && c.navigator != nil {
		c.navigator.RedirectToLogin(ctx)
	}

	return &Error{
		Kind:    ErrUnauthenticated,
		Status:  status,
		Code:    env.Code,
		Message: env.Message,
		cause:   err,
	}
}

func statusKind(status int) error {
	switch {
	case status == http.StatusForbidden:
		return ErrPermission
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrServer
	}
}

func decodeEnvelope(body io.Reader) (envelope, error) {
	var env envelope
	if err := json.NewDecoder(io.LimitReader(body, maxResponseBytes)).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response envelope: %w", err)
	}

	return env, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	return parsed, nil
}
