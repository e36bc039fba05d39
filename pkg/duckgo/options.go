package duckgo

import (
	"math/rand"
	"time"
)

// Config holds client construction settings. Immutable after New.
type Config struct {
	// Proxy routes all requests through a proxy. Must include a scheme
	// ("http://", "https://", "socks5://"); the shorthand "tb" expands
	// to the local Tor Browser proxy. The DDGS_PROXY environment
	// variable overrides this unconditionally.
	Proxy string

	// Proxies is deprecated; use Proxy. Accepted with a warning when
	// Proxy is unset.
	Proxies string

	// Timeout bounds each HTTP request. Defaults to 10s.
	Timeout time.Duration

	// Verify toggles TLS certificate verification. Defaults to true.
	Verify bool

	// Headers are extra default request headers. Referer is always
	// force-set to the provider origin.
	Headers map[string]string

	// Rand drives impersonation profile selection and auto-backend
	// shuffling. Defaults to a time-seeded source; inject for
	// deterministic tests.
	Rand *rand.Rand
}

// DefaultConfig returns the defaults New starts from.
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
		Verify:  true,
	}
}

// Option configures a Client.
type Option func(*Config)

// WithProxy sets the proxy URL (scheme required, or "tb").
func WithProxy(proxy string) Option {
	return func(c *Config) {
		c.Proxy = proxy
	}
}

// WithProxies sets the deprecated proxies value.
//
// Deprecated: use WithProxy.
func WithProxies(proxies string) Option {
	return func(c *Config) {
		c.Proxies = proxies
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithVerify toggles TLS certificate verification.
func WithVerify(verify bool) Option {
	return func(c *Config) {
		c.Verify = verify
	}
}

// WithHeaders sets extra default request headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Config) {
		c.Headers = headers
	}
}

// WithRand injects the randomness source used for identity selection
// and backend shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		c.Rand = rng
	}
}
