package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
)

type Client interface {
	Close() error
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (string, error)
	Ping(ctx context.Context) error
}

// HTTPClient talks to the auth JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API at baseURL. timeout bounds
// every request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// Register creates an account and returns the name echoed by the server.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
		User    string `json:"user"`
	}
	in := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, &out); err != nil {
		return "", err
	}
	return out.User, nil
}

// Login exchanges credentials for a token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me returns the user id the server reads from token.
func (c *HTTPClient) Me(ctx context.Context, token string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Ping checks GET /health. A 503 is reported as ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var m messageBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&m)

	e := &APIError{StatusCode: resp.StatusCode, Message: m.Message}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		e.Err = ErrNotFound
	case resp.StatusCode == http.StatusBadRequest && m.Message == "Wrong password":
		e.Err = ErrWrongPassword
	case resp.StatusCode == http.StatusBadRequest:
		e.Err = ErrBadRequest
	case resp.StatusCode == http.StatusUnauthorized:
		e.Err = ErrUnauthorized
	case resp.StatusCode == http.StatusServiceUnavailable:
		e.Err = ErrUnavailable
	default:
		e.Err = ErrServer
	}
	return e
}
