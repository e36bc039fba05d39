package duckgo

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/duckgo/internal/transport"
)

// Transport-level sentinels re-exported for consumers.
// Check with errors.Is.
var (
	// ErrNetwork indicates a connection or DNS level failure.
	ErrNetwork = transport.ErrNetwork

	// ErrTimeout indicates a request exceeded its timeout.
	ErrTimeout = transport.ErrTimeout

	// ErrRateLimited indicates the provider throttled or blocked a
	// request. Backing off or rotating proxy/identity may help; the
	// auto text backend rotates on it automatically.
	ErrRateLimited = transport.ErrRateLimited

	// ErrProtocol indicates a malformed or unexpected provider response.
	ErrProtocol = transport.ErrProtocol
)

// StatusError carries the URL and status code of a rejected request.
// Use errors.As to read the diagnostics.
type StatusError = transport.StatusError

// Errors raised by this package.
var (
	// ErrInvalidProxy is returned at construction for a proxy value
	// without a scheme.
	ErrInvalidProxy = errors.New("proxy must include a protocol (e.g. 'http://', 'socks5://')")

	// ErrInvalidParams is returned when search parameters fail validation.
	ErrInvalidParams = errors.New("invalid search parameters")

	// ErrNoVQD is returned when no session token could be extracted from
	// the provider's response. Fatal for the calling operation.
	ErrNoVQD = errors.New("could not extract vqd token")

	// ErrConversationLimit signals the provider ended the chat
	// conversation. Fatal for that chat session.
	ErrConversationLimit = errors.New("conversation limit reached")
)

// VQDError reports a failed token extraction with the offending keywords.
type VQDError struct {
	Keywords string
}

func (e *VQDError) Error() string {
	return fmt.Sprintf("keywords=%q: %v", e.Keywords, ErrNoVQD)
}

func (e *VQDError) Unwrap() error { return ErrNoVQD }
