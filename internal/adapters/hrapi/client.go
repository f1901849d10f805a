// Package hrapi implements ports.Backend over the HRMS REST API.
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation scope of backend call spans.
const TracerName = "go.trai.ch/hrdesk/internal/adapters/hrapi"

// RequestIDHeader carries a fresh identifier on every request.
const RequestIDHeader = "X-Request-ID"

const maxRetryDelay = 5 * time.Second

// Client implements ports.Backend.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	attempts   int
	retryDelay time.Duration
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its cookie jar is kept if set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		clone := *hc
		c.http = &clone
	}
}

// WithRetryDelay overrides the initial backoff between load attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// New creates a Client for the configured backend.
func New(settings domain.Settings, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(settings.BaseURL, "/"))
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigInvalid, err), "base_url", settings.BaseURL)
	}

	c := &Client{
		baseURL:    base,
		http:       &http.Client{Timeout: settings.RequestTimeout},
		attempts:   max(settings.RetryAttempts, 1),
		retryDelay: settings.RetryDelay,
		tracer:     otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, zerr.Wrap(err, "create cookie jar")
		}
		c.http.Jar = jar
	}
	if settings.SessionCookie != "" {
		c.http.Jar.SetCookies(base, []*http.Cookie{{
			Name:  settings.SessionCookieName,
			Value: settings.SessionCookie,
			Path:  "/",
		}})
	}

	return c, nil
}

// getJSON fetches path and decodes the body into out, retrying transient failures.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(body, path, out)
}

// sendJSON issues a non-idempotent request once. payload may be nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "encode request"), "path", path)
		}
	}
	return c.do(ctx, method, path, data)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	attempts := 1
	if method == http.MethodGet {
		attempts = c.attempts
	}

	var (
		body []byte
		err  error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		var status int
		body, status, err = c.once(ctx, method, path, payload)
		if status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		if err == nil || attempt == attempts || !retryable(err) {
			break
		}
		span.AddEvent("retry", trace.WithAttributes(attribute.Int("attempt", attempt)))
		if waitErr := c.backoff(ctx, attempt); waitErr != nil {
			err = &NetworkError{Method: method, Path: path, Err: waitErr}
			break
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "build request"), "path", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	return body, resp.StatusCode, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

func (c *Client) backoff(ctx context.Context, attempt int) error {
	delay := c.retryDelay << (attempt - 1)
	if delay > maxRetryDelay || delay < 0 {
		delay = maxRetryDelay
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryable reports whether a failed load may succeed when repeated.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return errors.Is(err, domain.ErrNetwork)
}

// decode accepts either a {"data": ...} envelope or the bare payload.
func decode(body []byte, path string, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
			trimmed = envelope.Data
			if bytes.Equal(bytes.TrimSpace(trimmed), []byte("null")) {
				return nil
			}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return zerr.With(errors.Join(domain.ErrDecodeFailed, err), "path", path)
	}
	return nil
}
