package duckgo

import (
	"context"

	"github.com/jmylchreest/duckgo/internal/logger"
)

// payload is the field set of one paginated request. Backends advance it
// between pages: the JSON endpoints swap a single "s" cursor, the HTML
// backends replace it wholesale with the next-page form's hidden inputs.
type payload map[string]string

func (p payload) clone() payload {
	out := make(payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// fetchPage issues one request and extracts its raw items. A nil next
// payload means there is no further page (exhaustion marker seen, or no
// cursor in the response).
type fetchPage[T any] func(ctx context.Context, p payload) (items []T, next payload, err error)

// walk drives a paginated collection.
type walk[T any] struct {
	payload    payload
	maxPages   int
	maxResults int
	key        func(T) string
	fetch      fetchPage[T]
}

// collectPages issues paginated requests until a termination condition:
// the result cap is reached, the backend reports no next page, no cap
// was requested (first page only), or the page bound is exhausted.
// Items whose key was already collected on an earlier page are skipped.
// Reaching the page bound returns the partial results, not an error.
func collectPages[T any](ctx context.Context, w walk[T]) ([]T, error) {
	seen := make(map[string]struct{})
	results := []T{}
	current := w.payload

	for page := 0; page < w.maxPages; page++ {
		items, next, err := w.fetch(ctx, current)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			k := w.key(item)
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			results = append(results, item)
			if w.maxResults > 0 && len(results) >= w.maxResults {
				return results, nil
			}
		}

		// No cursor terminates unconditionally; without a result cap the
		// caller only wants the first page.
		if next == nil || w.maxResults <= 0 {
			return results, nil
		}
		current = next
	}

	logger.Debug("page bound reached", "pages", w.maxPages, "collected", len(results))
	return results, nil
}
