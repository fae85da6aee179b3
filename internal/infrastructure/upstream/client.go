// Package upstream implements the HTTP client for the billing record API.
// The API owns all record storage and business rules; this client only
// shuttles DTOs and attaches the caller's bearer token to every request.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/api/metrics"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the billing API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin JSON-over-HTTP client for the billing API.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client. A default timeout is applied when none is
// provided; this is the only timeout layer the portal adds.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorBody is the billing API's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one round-trip: marshal body, attach the bearer token, decode
// the response into out. 404 maps to domain.ErrRecordNotFound; any other
// non-2xx maps to domain.ErrUpstream with the remote message attached.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream %s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("upstream %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("operation", op).Msg("billing api unreachable")
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		outcome = "not_found"
		return domain.ErrRecordNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{op: op, code: resp.StatusCode, message: remoteMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s: decode response: %v", domain.ErrUpstream, op, err)
		}
	}

	outcome = "ok"
	return nil
}

// Ping checks that the billing API answers at all. Any HTTP response,
// including an auth rejection, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ping: %v", domain.ErrUpstream, err)
	}
	resp.Body.Close()
	return nil
}

// statusError is a non-2xx answer from the billing API. It unwraps to
// domain.ErrUpstream so callers can treat any remote rejection uniformly
// while still being able to inspect the status code.
type statusError struct {
	op      string
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("billing api unavailable: %s: %d %s", e.op, e.code, e.message)
}

func (e *statusError) Unwrap() error { return domain.ErrUpstream }

// statusCode extracts the HTTP status from an upstream error, or 0.
func statusCode(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}

// remoteMessage pulls a human-readable message out of an error response,
// falling back to the HTTP status line.
func remoteMessage(resp *http.Response) string {
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return resp.Status
}
