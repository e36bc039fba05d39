// Package duckgo is a client for DuckDuckGo's undocumented web endpoints:
// text, image, video and news search plus the duckchat conversational AI.
//
// The provider offers no official API; this package impersonates a
// browser identity, acquires the short-lived vqd session tokens the
// endpoints require, and walks paginated HTML/JSON responses into typed
// results.
package duckgo

import (
	"context"
	"math/rand"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jmylchreest/duckgo/internal/identity"
	"github.com/jmylchreest/duckgo/internal/logger"
	"github.com/jmylchreest/duckgo/internal/pacer"
	"github.com/jmylchreest/duckgo/internal/transport"
)

const origin = "https://duckduckgo.com"

// endpoints are overridable so tests can point the client at local
// servers.
type endpoints struct {
	home       string
	htmlSearch string
	liteSearch string
	images     string
	videos     string
	news       string
	chatStatus string
	chat       string
}

func defaultEndpoints() endpoints {
	return endpoints{
		home:       origin + "/",
		htmlSearch: "https://html.duckduckgo.com/html",
		liteSearch: "https://lite.duckduckgo.com/lite/",
		images:     origin + "/i.js",
		videos:     origin + "/v.js",
		news:       origin + "/news.js",
		chatStatus: origin + "/duckchat/v1/status",
		chat:       origin + "/duckchat/v1/chat",
	}
}

// Client queries the provider. A Client is safe for concurrent use for
// search operations; chat sends on one Client are serialized internally
// but a returned ChatStream must be consumed from a single goroutine.
type Client struct {
	http      *transport.Client
	pacer     *pacer.Pacer
	profile   identity.Profile
	endpoints endpoints

	rngMu sync.Mutex
	rng   *rand.Rand

	chat chatSession
}

// New creates a Client. It fails with ErrInvalidProxy when the proxy
// value lacks a scheme.
func New(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	proxy := expandProxyAlias(cfg.Proxy)
	if cfg.Proxy == "" && cfg.Proxies != "" {
		logger.Warn("'proxies' is deprecated, use 'proxy' instead")
		proxy = expandProxyAlias(cfg.Proxies)
	}
	if env := os.Getenv("DDGS_PROXY"); env != "" {
		proxy = env
	}

	var proxyURL *url.URL
	if proxy != "" {
		if !strings.Contains(proxy, "://") {
			return nil, ErrInvalidProxy
		}
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, ErrInvalidProxy
		}
		proxyURL = u
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	profile := identity.Pick(rng)
	logger.Debug("client identity selected", "profile", profile.Name)

	headers := make(map[string]string, len(cfg.Headers)+2)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	headers["Referer"] = origin + "/"
	headers["User-Agent"] = profile.UserAgent

	return &Client{
		http: transport.New(transport.Config{
			ProxyURL:           proxyURL,
			InsecureSkipVerify: !cfg.Verify,
			Timeout:            cfg.Timeout,
			Headers:            headers,
		}),
		pacer:     pacer.New(),
		profile:   profile,
		endpoints: defaultEndpoints(),
		rng:       rng,
	}, nil
}

// Profile reports the impersonation profile selected at construction.
func (c *Client) Profile() string {
	return c.profile.Name
}

// paced dispatches a search-family request through the rate pacer.
// Chat requests bypass this; the provider treats chat as interactive.
func (c *Client) paced(ctx context.Context, req transport.Request) (*transport.Response, error) {
	c.pacer.Wait()
	return c.http.Do(ctx, req)
}

// shuffle returns a copy of items in random order.
func (c *Client) shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	c.rngMu.Lock()
	c.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	c.rngMu.Unlock()
	return out
}
