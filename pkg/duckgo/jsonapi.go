package duckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmylchreest/duckgo/internal/transport"
)

// jsonPage is the envelope the i.js/v.js/news.js endpoints return.
type jsonPage[R any] struct {
	Results []R    `json:"results"`
	Next    string `json:"next"`
}

// fetchJSONPage issues one paced GET against a JSON search endpoint and
// decodes its result page. The returned payload carries the advanced
// "s" cursor, or nil when the response holds none.
func fetchJSONPage[R any](ctx context.Context, c *Client, endpoint string, p payload, headers map[string]string) ([]R, payload, error) {
	query := url.Values{}
	for k, v := range p {
		query.Set(k, v)
	}

	resp, err := c.paced(ctx, transport.Request{
		Method:  http.MethodGet,
		URL:     endpoint,
		Query:   query,
		Headers: headers,
	})
	if err != nil {
		return nil, nil, err
	}
	body, err := resp.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var page jsonPage[R]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, nil, fmt.Errorf("%w: decode %s page: %v", ErrProtocol, endpoint, err)
	}

	cursor := nextCursor(page.Next)
	if cursor == "" {
		return page.Results, nil, nil
	}
	next := p.clone()
	next["s"] = cursor
	return page.Results, next, nil
}

// nextCursor pulls the "s" offset out of a next-page path like
// "/i.js?q=ducks&s=100&o=json".
func nextCursor(next string) string {
	_, after, found := strings.Cut(next, "s=")
	if !found {
		return ""
	}
	cursor, _, _ := strings.Cut(after, "&")
	return cursor
}

// joinFilters builds the comma-separated "f" filter parameter, skipping
// unset filters.
func joinFilters(pairs ...[2]string) string {
	var parts []string
	for _, pair := range pairs {
		if pair[1] != "" {
			parts = append(parts, pair[0]+":"+pair[1])
		}
	}
	return strings.Join(parts, ",")
}
