package transport

import (
	"errors"
	"fmt"
)

// Sentinel errors for the transport taxonomy. Check with errors.Is.
var (
	// ErrNetwork indicates a connection or DNS level failure.
	ErrNetwork = errors.New("network failure")

	// ErrTimeout indicates the request exceeded its timeout. Kept
	// distinct from ErrNetwork so callers can decide whether to retry.
	ErrTimeout = errors.New("request timed out")

	// ErrRateLimited indicates the provider throttled or blocked the
	// request. Callers may back off, rotate identity or switch backend.
	ErrRateLimited = errors.New("ratelimited by provider")

	// ErrProtocol indicates an unexpected response. Non-retryable.
	ErrProtocol = errors.New("unexpected provider response")
)

// Statuses the provider uses to throttle or block scraping clients.
// 418 is its teapot block code; 202 and 301 show up as soft blocks.
var rateLimitStatuses = map[int]bool{
	202: true,
	301: true,
	400: true,
	403: true,
	418: true,
	429: true,
}

// StatusError carries the offending URL and status for diagnostics.
// It unwraps to ErrRateLimited or ErrProtocol depending on the status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d %v", e.URL, e.StatusCode, e.Unwrap())
}

func (e *StatusError) Unwrap() error {
	if rateLimitStatuses[e.StatusCode] {
		return ErrRateLimited
	}
	return ErrProtocol
}

// Classify maps a response status to the error taxonomy. It returns nil
// for 200 and never retries; it only labels.
func Classify(url string, status int) error {
	if status == 200 {
		return nil
	}
	return &StatusError{URL: url, StatusCode: status}
}
