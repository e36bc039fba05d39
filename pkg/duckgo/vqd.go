package duckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmylchreest/duckgo/internal/logger"
	"github.com/jmylchreest/duckgo/internal/transport"
)

// vqd marker patterns, tried in priority order.
var vqdPatterns = []struct {
	start string
	end   string
}{
	{`vqd="`, `"`},
	{`vqd=`, `&`},
	{`vqd='`, `'`},
}

// extractVQD scans a response body for the session token.
func extractVQD(body []byte, keywords string) (string, error) {
	text := string(body)
	for _, p := range vqdPatterns {
		start := strings.Index(text, p.start)
		if start < 0 {
			continue
		}
		start += len(p.start)
		end := strings.Index(text[start:], p.end)
		if end < 0 {
			continue
		}
		return text[start : start+end], nil
	}
	return "", &VQDError{Keywords: keywords}
}

// searchVQD fetches the home page for the query and extracts the vqd
// token the JSON search endpoints require.
func (c *Client) searchVQD(ctx context.Context, keywords string) (string, error) {
	resp, err := c.paced(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    c.endpoints.home,
		Query:  url.Values{"q": {keywords}},
	})
	if err != nil {
		return "", err
	}
	body, err := resp.ReadAll()
	if err != nil {
		return "", err
	}

	vqd, err := extractVQD(body, keywords)
	if err != nil {
		return "", err
	}
	logger.Debug("search vqd acquired", "keywords", keywords)
	return vqd, nil
}

// chatVQD returns the cached chat token/hash pair, fetching a fresh one
// from the status endpoint when absent or when force is set. Header
// values missing from the response fall back to the cached pair.
// Caller must hold c.chat.mu.
func (c *Client) chatVQD(ctx context.Context, force bool) (string, string, error) {
	if c.chat.vqd != "" && c.chat.vqdHash != "" && !force {
		return c.chat.vqd, c.chat.vqdHash, nil
	}

	resp, err := c.http.Do(ctx, transport.Request{
		Method:  http.MethodGet,
		URL:     c.endpoints.chatStatus,
		Headers: map[string]string{"x-vqd-accept": "1"},
	})
	if err != nil {
		return "", "", err
	}
	resp.Body.Close()

	vqd := c.chat.vqd
	if v := resp.Header.Get("x-vqd-4"); v != "" {
		vqd = v
	}
	hash := c.chat.vqdHash
	if v := resp.Header.Get("x-vqd-hash-1"); v != "" {
		hash = v
	}
	logger.Debug("chat vqd refreshed", "forced", force)
	return vqd, hash, nil
}
