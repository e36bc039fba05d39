package duckgo

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type newsRow struct {
	Date    int64  `json:"date"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	URL     string `json:"url"`
	Image   string `json:"image"`
	Source  string `json:"source"`
}

// News performs a news search against the news.js endpoint. Results are
// deduplicated by article URL across pages.
func (c *Client) News(ctx context.Context, keywords string, opts NewsOptions) ([]NewsResult, error) {
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

	p := payload{
		"l":     orDefault(opts.Region, "wt-wt"),
		"o":     "json",
		"noamp": "1",
		"q":     keywords,
		"vqd":   vqd,
		"p":     videoSafeSearch[strings.ToLower(orDefault(opts.SafeSearch, "moderate"))],
	}
	if opts.TimeLimit != "" {
		p["df"] = opts.TimeLimit
	}

	return collectPages(ctx, walk[NewsResult]{
		payload:    p,
		maxPages:   5,
		maxResults: opts.MaxResults,
		key:        func(r NewsResult) string { return r.URL },
		fetch: func(ctx context.Context, p payload) ([]NewsResult, payload, error) {
			rows, next, err := fetchJSONPage[newsRow](ctx, c, c.endpoints.news, p, nil)
			if err != nil {
				return nil, nil, err
			}
			items := make([]NewsResult, 0, len(rows))
			for _, row := range rows {
				items = append(items, NewsResult{
					Date:   time.Unix(row.Date, 0).UTC(),
					Title:  row.Title,
					Body:   normalize(row.Excerpt),
					URL:    normalizeURL(row.URL),
					Image:  normalizeURL(row.Image),
					Source: row.Source,
				})
			}
			return items, next, nil
		},
	})
}
