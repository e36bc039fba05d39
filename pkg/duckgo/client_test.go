package duckgo

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/jmylchreest/duckgo/internal/pacer"
)

// newTestClient builds a client with a deterministic randomness source
// and a pacer that never sleeps. Tests point c.endpoints at local
// servers.
func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.pacer = pacer.NewWithClock(0, 0, time.Now, func(time.Duration) {})
	return c
}

func TestNewRejectsSchemelessProxy(t *testing.T) {
	_, err := New(WithProxy("example.com:8080"))
	if !errors.Is(err, ErrInvalidProxy) {
		t.Fatalf("err = %v, want ErrInvalidProxy", err)
	}
}

func TestNewAcceptsProxyWithScheme(t *testing.T) {
	for _, proxy := range []string{
		"http://example.com:8080",
		"https://example.com:8080",
		"socks5://127.0.0.1:9050",
		"tb",
	} {
		if _, err := New(WithProxy(proxy)); err != nil {
			t.Errorf("New(WithProxy(%q)): %v", proxy, err)
		}
	}
}

func TestNewDeprecatedProxiesStillWorks(t *testing.T) {
	if _, err := New(WithProxies("socks5://127.0.0.1:9050")); err != nil {
		t.Fatalf("New with deprecated proxies: %v", err)
	}

	// The schemeless check applies to the deprecated field too.
	_, err := New(WithProxies("example.com:8080"))
	if !errors.Is(err, ErrInvalidProxy) {
		t.Fatalf("err = %v, want ErrInvalidProxy", err)
	}
}

func TestNewEnvProxyOverrides(t *testing.T) {
	t.Setenv("DDGS_PROXY", "example.com:8080")
	_, err := New(WithProxy("http://example.com:8080"))
	if !errors.Is(err, ErrInvalidProxy) {
		t.Fatalf("err = %v, want ErrInvalidProxy from the env value", err)
	}

	t.Setenv("DDGS_PROXY", "socks5://10.0.0.1:1080")
	if _, err := New(); err != nil {
		t.Fatalf("New with env proxy: %v", err)
	}
}

func TestNewPicksProfile(t *testing.T) {
	c := newTestClient(t)
	if c.Profile() == "" {
		t.Fatal("no impersonation profile selected")
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	c := newTestClient(t)
	in := []string{"html", "lite"}
	out := c.shuffle(in)
	if in[0] != "html" || in[1] != "lite" {
		t.Errorf("input mutated: %v", in)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d", len(out))
	}
	seen := map[string]bool{out[0]: true, out[1]: true}
	if !seen["html"] || !seen["lite"] {
		t.Errorf("shuffle lost elements: %v", out)
	}
}
