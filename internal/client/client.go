// Package client calls a running passmeter server. It satisfies the same
// scoring contract as local evaluation so callers can switch between them.
package client

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
	"time"

	"github.com/fernandezvara/passmeter"
)

// ErrStatus is wrapped by errors returned for non-200 responses.
var ErrStatus = errors.New("unexpected response status")

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 5 * time.Second

// Client scores passwords through the HTTP API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client for the server at baseURL (e.g. http://127.0.0.1:5000).
// A nil httpClient selects one with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		endpoint:   u.String() + "/check_password",
		httpClient: httpClient,
	}, nil
}

type checkRequest struct {
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Evaluate sends password to the server and returns its Result.
func (c *Client) Evaluate(ctx context.Context, password string) (passmeter.Result, error) {
	body, err := json.Marshal(checkRequest{Password: password})
	if err != nil {
		return passmeter.Result{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return passmeter.Result{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return passmeter.Result{}, fmt.Errorf("calling %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&e)
		return passmeter.Result{}, fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode, e.Error)
	}

	var result passmeter.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return passmeter.Result{}, fmt.Errorf("decoding response: %w", err)
	}
	return result, nil
}
