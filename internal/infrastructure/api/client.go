// Package api implements the HTTP clients for the remote session service and
// the request decoration that carries the viewer's credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/service"
)

// Client is the shared HTTP plumbing for all resource clients: base URL
// handling, JSON encoding, and credential decoration via AuthTransport.
type Client struct {
	base   *url.URL
	http   *http.Client
	forms  *service.FormValidator
	logger zerolog.Logger
}

func NewClient(baseURL string, state *service.SessionState, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}

	return &Client{
		base: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &AuthTransport{State: state},
		},
		forms:  service.NewFormValidator(),
		logger: logger,
	}, nil
}

// roundTrip issues one request and decodes a 2xx body into out (when out is
// non-nil). It returns the status code untouched; classification is the
// caller's concern. A nil body sends no request body at all.
func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
		return resp.StatusCode, nil
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// call is roundTrip plus classification of the status code into the error
// taxonomy.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	status, err := c.roundTrip(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if err := domain.ErrorFromStatus(status); err != nil {
		c.logger.Debug().
			Int("status", status).
			Str("method", method).
			Str("path", path).
			Msg("request rejected")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}
