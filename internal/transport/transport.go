// Package transport wraps the HTTP client used against the provider's
// endpoints. It builds requests from structured parts (query, form, JSON
// or raw bodies), enforces per-request timeouts, and classifies response
// status codes into the typed error taxonomy.
//
// This layer never retries; retry and fallback decisions belong to the
// callers driving it.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmylchreest/duckgo/internal/logger"
)

// DefaultTimeout applies when the config does not set one.
const DefaultTimeout = 10 * time.Second

// Config holds transport construction settings.
type Config struct {
	// ProxyURL routes all requests through a proxy (http, https or socks5).
	ProxyURL *url.URL

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// Timeout bounds each request, including body read. Zero means
	// DefaultTimeout.
	Timeout time.Duration

	// Headers are attached to every request (user-agent, referer, plus
	// any caller extras). Per-request headers override them.
	Headers map[string]string
}

// Client executes provider requests.
type Client struct {
	http    *http.Client
	headers map[string]string
	timeout time.Duration
}

// New creates a transport client.
func New(cfg Config) *Client {
	tr := &http.Transport{}
	if cfg.ProxyURL != nil {
		tr.Proxy = http.ProxyURL(cfg.ProxyURL)
	}
	if cfg.InsecureSkipVerify {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		http:    &http.Client{Transport: tr},
		headers: headers,
		timeout: timeout,
	}
}

// Request describes one provider request. At most one of Form, JSON and
// Raw may be set.
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Headers map[string]string
	Form    url.Values
	JSON    any
	Raw     []byte

	// Timeout overrides the client timeout for this request only.
	Timeout time.Duration
}

// Response is the outcome of a successfully classified request.
// Body must be closed by the caller; closing it also releases the
// request's timeout resources.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// ReadAll drains and closes the body.
func (r *Response) ReadAll() ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// cancelReadCloser ties a context cancel to body close so abandoning a
// stream frees the connection.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// Do executes a request and classifies the response status. A non-OK
// status yields a *StatusError; connection failures yield ErrNetwork and
// deadline overruns ErrTimeout.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if cerr := Classify(req.URL, resp.StatusCode); cerr != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, cerr
	}
	return resp, nil
}

// DoRaw executes a request without classifying the status code. The chat
// stream needs this: the provider reports errors inside the event stream
// even on non-OK statuses, and the status itself decides how an in-stream
// error is typed.
func (c *Client) DoRaw(ctx context.Context, req Request) (*Response, error) {
	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	target := req.URL
	if len(req.Query) > 0 {
		target = req.URL + "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Raw != nil:
		body = bytes.NewReader(req.Raw)
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSON != nil:
		buf, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		cancel()
		if isTimeout(err) {
			return nil, fmt.Errorf("%s: %w", req.URL, ErrTimeout)
		}
		return nil, fmt.Errorf("%s: %w: %v", req.URL, ErrNetwork, err)
	}

	logger.Debug("request dispatched", "method", req.Method, "url", req.URL, "status", resp.StatusCode)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel},
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr interface{ Timeout() bool }
	return errors.As(err, &nerr) && nerr.Timeout()
}
