package service

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

const (
	maxResponseBytes = 25 << 20
	maxErrorBytes    = 1 << 20
)

// ErrUnauthorized marks an HTTP 401 that survived the one-shot
// reauthentication retry.
var ErrUnauthorized = errors.New("unauthorized")

// Client executes HTTP calls with bearer-token injection and a single
// retry on 401. All sheet and mail operations share one Client.
type Client struct {
	http   *http.Client
	tokens TokenProvider
}

// NewClient creates a transport client around the given token provider.
func NewClient(tokens TokenProvider) *Client {
	return &Client{
		http:   &http.Client{Timeout: 20 * time.Second},
		tokens: tokens,
	}
}

// Fetch issues an unauthenticated GET and JSON-decodes the response into
// out. On decode failure the raw body is surfaced in the error for
// diagnostics.
func (c *Client) Fetch(ctx context.Context, urlStr string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// FetchAuthorized issues a GET with a bearer token. A 401 response forces
// one reauthentication and exactly one retry.
func (c *Client) FetchAuthorized(ctx context.Context, urlStr string, out any) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	if err := c.do(req, out); err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			return err
		}
		c.tokens.Invalidate()
		token, tokenErr := c.tokens.AccessToken(ctx)
		if tokenErr != nil {
			return tokenErr
		}
		retry, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
		if reqErr != nil {
			return reqErr
		}
		retry.Header.Set("Authorization", "Bearer "+token)
		return c.do(retry, out)
	}
	return nil
}

// AuthorizedRequest builds a request with a bearer header and a JSON body,
// for callers that inspect or send it via Send.
func (c *Client) AuthorizedRequest(ctx context.Context, method, urlStr string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// Send issues a prepared request. A 401 response forces one
// reauthentication and exactly one retry with a re-wound body; any non-2xx
// status after that is terminal.
func (c *Client) Send(req *http.Request) error {
	err := c.do(req, nil)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	c.tokens.Invalidate()
	token, tokenErr := c.tokens.AccessToken(req.Context())
	if tokenErr != nil {
		return tokenErr
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return bodyErr
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)
	return c.do(retry, nil)
}

// do executes one attempt and decodes a 2xx JSON response into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, readErrorBody(resp))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status=%d: %s", resp.StatusCode, readErrorBody(resp))
	}
	if out == nil {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("json decode error (body: %s): %w", truncateForLog(body), err)
	}
	return nil
}

func readErrorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return msg
}

func truncateForLog(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
