// Package gateway is the dashboard's single HTTP client for the Botica Real
// API. Every domain accessor funnels through one Client configured with a
// base URL and an immutable session: no retries, no token refresh, no
// ambient global state.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthenticated marks 401 responses so callers can clear the stored
// token and send the operator back to the login screen.
var ErrUnauthenticated = errors.New("gateway: unauthenticated")

// Session is the credential attached to every request. The zero value is an
// anonymous session. A Session never mutates; log in again to get a new one.
type Session struct {
	token string
}

// NewSession wraps a bearer token.
func NewSession(token string) Session {
	return Session{token: token}
}

// Token returns the raw bearer token, empty for anonymous sessions.
func (s Session) Token() string {
	return s.token
}

// APIError is a non-2xx response decoded from the problem body.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("gateway: %d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("gateway: %d %s", e.Status, e.Title)
}

// Client executes REST calls against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// New constructs a Client. The session is fixed at construction time; use
// WithSession for an authenticated copy after login.
func New(baseURL string, session Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// WithSession returns a copy of the client bound to another session.
func (c *Client) WithSession(session Session) *Client {
	clone := *c
	clone.session = session
	return &clone
}

// Session returns the session the client was built with.
func (c *Client) Session() Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.token != "" {
		req.Header.Set("Authorization", "bearer "+c.session.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

func decodeError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode, Title: http.StatusText(res.StatusCode)}
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(res.Body).Decode(&problem); err == nil {
		if problem.Title != "" {
			apiErr.Title = problem.Title
		}
		apiErr.Detail = problem.Detail
	}
	if res.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthenticated, apiErr)
	}
	return apiErr
}
