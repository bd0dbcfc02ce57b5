// Package marketplace provides the HTTP client for the Fundi backend REST
// API. It owns envelope decoding, including the backend's mixed snake_case
// and camelCase pagination keys, and the placeholder policy for records
// that fail to decode
package marketplace

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "fundi/internal/platform/errors"
	"fundi/internal/platform/logger"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "fundi-feed"
)

// TokenProvider supplies the bearer token for authenticated endpoints.
// An empty token means unauthenticated
type TokenProvider interface {
	Token() string
}

// StaticToken is a TokenProvider for a fixed token. It doubles as the
// feed auth gate: empty means not logged in
type StaticToken string

// Token implements TokenProvider
func (t StaticToken) Token() string { return string(t) }

// Authenticated implements feed.AuthGate
func (t StaticToken) Authenticated() bool { return t != "" }

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Tokens    TokenProvider
}

// Client is the backend REST client. One instance is shared across feeds;
// it holds no per-query state
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults. BaseURL is required
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		panic("marketplace.NewClient requires a BaseURL")
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("marketplace"),
	}
}

// get issues one GET and decodes the response body into out.
// No retries here; the feed's retry policy wraps these calls
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.opts.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "marketplace new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("X-Client-App", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.opts.Tokens != nil {
		if tok := c.opts.Tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "Could not reach the server. Check your connection and try again")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("marketplace http response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// read a small tail for diagnostics, surface a display message
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Bytes("body", body).Msg("marketplace non-2xx")
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return perr.Unauthorizedf("Please log in and try again")
		case http.StatusNotFound:
			return perr.NotFoundf("Not found")
		default:
			return perr.Unavailablef("The server returned an error (%d). Please try again", resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "The server sent an unexpected response. Please try again")
	}
	return nil
}

// checkEnvelope enforces the {success, message?} contract shared by every
// endpoint. A missing success flag is a malformed response; success=false
// surfaces the server-supplied message
func checkEnvelope(success *bool, message string) error {
	if success == nil {
		return perr.JSONErrf("The server sent an unexpected response. Please try again")
	}
	if !*success {
		if message == "" {
			message = "Something went wrong. Please try again"
		}
		return perr.Newf(perr.ErrorCodeUnknown, "%s", message)
	}
	return nil
}
