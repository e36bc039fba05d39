package duckgo

import (
	"context"
	"fmt"
	"strings"
)

// Safesearch levels map to different numeric codes per endpoint.
var imageSafeSearch = map[string]string{"on": "1", "moderate": "1", "off": "-1"}

type imageRow struct {
	Title     string `json:"title"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Source    string `json:"source"`
}

// Images performs an image search against the i.js endpoint. Results
// are deduplicated by image URL across pages.
func (c *Client) Images(ctx context.Context, keywords string, opts ImageOptions) ([]ImageResult, error) {
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
		[2]string{"time", opts.TimeLimit},
		[2]string{"size", opts.Size},
		[2]string{"color", opts.Color},
		[2]string{"type", opts.Type},
		[2]string{"layout", opts.Layout},
		[2]string{"license", opts.License},
	)

	p := payload{
		"l":   orDefault(opts.Region, "wt-wt"),
		"o":   "json",
		"q":   keywords,
		"vqd": vqd,
		"f":   filters,
		"p":   imageSafeSearch[strings.ToLower(orDefault(opts.SafeSearch, "moderate"))],
	}

	return collectPages(ctx, walk[ImageResult]{
		payload:    p,
		maxPages:   5,
		maxResults: opts.MaxResults,
		key:        func(r ImageResult) string { return r.Image },
		fetch: func(ctx context.Context, p payload) ([]ImageResult, payload, error) {
			rows, next, err := fetchJSONPage[imageRow](ctx, c, c.endpoints.images, p,
				map[string]string{"Referer": origin + "/"})
			if err != nil {
				return nil, nil, err
			}
			items := make([]ImageResult, 0, len(rows))
			for _, row := range rows {
				items = append(items, ImageResult{
					Title:     row.Title,
					Image:     normalizeURL(row.Image),
					Thumbnail: normalizeURL(row.Thumbnail),
					URL:       normalizeURL(row.URL),
					Height:    row.Height,
					Width:     row.Width,
					Source:    row.Source,
				})
			}
			return items, next, nil
		},
	})
}
