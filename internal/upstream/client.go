package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to the marketplace REST API on behalf of a signed-in user.
// The bearer token is passed per call; the client itself holds no session.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string, timeoutSec int) *Client {
	if timeoutSec == 0 {
		timeoutSec = 30
	}
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Error is a remote-reported failure. Message carries the upstream `message`
// field verbatim for user-facing display.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Ping checks upstream reachability; used at startup.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "", "/health", nil, nil)
}

func (c *Client) get(ctx context.Context, token, endpoint string, query url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, token, out)
}

func (c *Client) send(ctx context.Context, method, token, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out any) error {
	req.Header.Set("User-Agent", "linkboard/gateway")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("upstream request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Str("url", req.URL.String()).Err(err).Msg("upstream request failed")
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// decodeError lifts the upstream `message` field into an Error; when the body
// carries none, a generic status-derived message is used instead.
func decodeError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return &Error{Status: status, Message: payload.Message}
	}
	return &Error{Status: status, Message: fmt.Sprintf("upstream request failed (status %d)", status)}
}
