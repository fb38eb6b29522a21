// Package apiclient performs authenticated round trips to the catalog API.
package apiclient

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

	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
	"github.com/catalogadmin/console/internal/pkg/metrics"
)

// maxErrorBody bounds how much of a failed response is read to find a detail.
const maxErrorBody = 64 << 10

type Config struct {
	BaseURL   string
	Timeout   time.Duration // zero means no timeout
	UserAgent string
}

// Client implements ports.Requester over net/http.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

var _ ports.Requester = (*Client)(nil)

func New(cfg Config, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient: base url %q must be absolute", cfg.BaseURL)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	return &Client{
		base: base,
		http: &http.Client{
			Transport: &headerTransport{
				UserAgent: cfg.UserAgent,
				Base:      http.DefaultTransport,
			},
			Timeout: cfg.Timeout,
		},
		log: log.With().Str("component", "apiclient").Logger(),
	}, nil
}

// Do sends req. It never retries and never reads a successful body.
func (c *Client) Do(ctx context.Context, req ports.Request) (*http.Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: encode %s %s body: %w", req.Method, req.Path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build %s %s: %w", req.Method, req.Path, err)
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.Credential.IsZero() {
		httpReq.Header.Set("Authorization", req.Credential.Bearer())
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	metrics.RequestDuration.WithLabelValues(req.Method, req.Path).Observe(time.Since(start).Seconds())

	if err != nil {
		terr := &domain.TransportError{Method: req.Method, Path: req.Path, Err: err}
		metrics.RequestsTotal.WithLabelValues(req.Method, req.Path, "transport_error").Inc()
		c.log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("request failed")
		return nil, terr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readDetail(resp)
		var failure error
		outcome := "http_error"
		if resp.StatusCode == http.StatusUnauthorized {
			failure = &domain.AuthError{Status: resp.StatusCode, Detail: detail}
			outcome = "unauthorized"
		} else {
			failure = &domain.HTTPError{Method: req.Method, Path: req.Path, Status: resp.StatusCode, Detail: detail}
		}
		metrics.RequestsTotal.WithLabelValues(req.Method, req.Path, outcome).Inc()
		c.log.Error().
			Str("method", req.Method).
			Str("path", req.Path).
			Int("status", resp.StatusCode).
			Str("detail", detail).
			Msg("request rejected")
		return nil, failure
	}

	metrics.RequestsTotal.WithLabelValues(req.Method, req.Path, "ok").Inc()
	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request completed")
	return resp, nil
}

func (c *Client) url(path string) string {
	u := *c.base
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u.Path = c.base.Path + path
	return u.String()
}

func encodeBody(v any) (io.Reader, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// readDetail drains and closes a failed response and returns the "detail"
// field of its JSON body. String details are returned as is; a list of
// validation entries ({"msg": ...}) is joined.
func readDetail(resp *http.Response) string {
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var entries []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &entries); err == nil {
		msgs := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Msg != "" {
				msgs = append(msgs, e.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
