package duckgo

import (
	"context"
	"fmt"
	"strings"
)

var videoSafeSearch = map[string]string{"on": "1", "moderate": "-1", "off": "-2"}

// Videos performs a video search against the v.js endpoint. Results are
// deduplicated by content URL across pages; video pagination runs
// deeper than the other endpoints (8 pages).
func (c *Client) Videos(ctx context.Context, keywords string, opts VideoOptions) ([]VideoResult, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("%w: keywords is mandatory", ErrInvalidParams)
	}
	if err := checkParams(opts); err != nil {
		return nil, err
	}

	vqd, err := c.searchVQD(ctx, keywords)
	if err != nil {
		return nil, err
	}

	filters := joinFilters(
		[2]string{"publishedAfter", opts.TimeLimit},
		[2]string{"videoDefinition", opts.Resolution},
		[2]string{"videoDuration", opts.Duration},
		[2]string{"videoLicense", opts.License},
	)

	p := payload{
		"l":   orDefault(opts.Region, "wt-wt"),
		"o":   "json",
		"q":   keywords,
		"vqd": vqd,
		"f":   filters,
		"p":   videoSafeSearch[strings.ToLower(orDefault(opts.SafeSearch, "moderate"))],
	}

	return collectPages(ctx, walk[VideoResult]{
		payload:    p,
		maxPages:   8,
		maxResults: opts.MaxResults,
		key:        func(r VideoResult) string { return r.Content },
		fetch: func(ctx context.Context, p payload) ([]VideoResult, payload, error) {
			return fetchJSONPage[VideoResult](ctx, c, c.endpoints.videos, p, nil)
		},
	})
}
