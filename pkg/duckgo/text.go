package duckgo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/duckgo/internal/logger"
	"github.com/jmylchreest/duckgo/internal/transport"
)

// Exhaustion markers embedded in the backend result pages.
const (
	noResultsHTML = "No  results."
	noResultsLite = "No more results."
)

// Ad and garbage links filtered out of text results.
func isAdLink(href string) bool {
	return strings.HasPrefix(href, "http://www.google.com/search?q=") ||
		strings.HasPrefix(href, "https://duckduckgo.com/y.js?ad_domain")
}

// Text performs a text search. With Backend "auto" the html and lite
// endpoints are tried in random order, falling through on any failure;
// the error is surfaced only when every backend failed.
func (c *Client) Text(ctx context.Context, keywords string, opts TextOptions) ([]TextResult, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("%w: keywords is mandatory", ErrInvalidParams)
	}
	if err := checkParams(opts); err != nil {
		return nil, err
	}

	backend := orDefault(opts.Backend, BackendAuto)
	if backend == "api" || backend == "ecosia" {
		logger.Warn("deprecated text backend, using auto", "backend", backend)
		backend = BackendAuto
	}

	var backends []string
	if backend == BackendAuto {
		backends = c.shuffle([]string{BackendHTML, BackendLite})
	} else {
		backends = []string{backend}
	}

	var lastErr error
	for _, b := range backends {
		var results []TextResult
		var err error
		if b == BackendHTML {
			results, err = c.textHTML(ctx, keywords, opts)
		} else {
			results, err = c.textLite(ctx, keywords, opts)
		}
		if err == nil {
			return results, nil
		}
		lastErr = err
		logger.Info("text backend failed", "backend", b, "error", err)
	}
	return nil, fmt.Errorf("text search failed on all backends: %w", lastErr)
}

func (c *Client) textHTML(ctx context.Context, keywords string, opts TextOptions) ([]TextResult, error) {
	p := payload{"q": keywords, "b": "", "kl": orDefault(opts.Region, "wt-wt")}
	if opts.TimeLimit != "" {
		p["df"] = opts.TimeLimit
	}
	return collectPages(ctx, walk[TextResult]{
		payload:    p,
		maxPages:   5,
		maxResults: opts.MaxResults,
		key:        func(r TextResult) string { return r.URL },
		fetch:      c.textHTMLPage,
	})
}

// textHTMLPage fetches and parses one page from the html backend.
// Results are divs with an h2 title; the next-page cursor is the hidden
// input set of the nav form.
func (c *Client) textHTMLPage(ctx context.Context, p payload) ([]TextResult, payload, error) {
	body, err := c.postBackend(ctx, c.endpoints.htmlSearch, p)
	if err != nil {
		return nil, nil, err
	}
	if bytes.Contains(body, []byte(noResultsHTML)) {
		return nil, nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse html backend page: %v", ErrProtocol, err)
	}

	var items []TextResult
	doc.Find("div:has(h2)").Each(func(_ int, s *goquery.Selection) {
		link := s.ChildrenFiltered("a").First()
		href, ok := link.Attr("href")
		if !ok || isAdLink(href) {
			return
		}
		items = append(items, TextResult{
			Title:       normalize(s.Find("h2 a").First().Text()),
			URL:         normalizeURL(href),
			Description: normalize(link.Text()),
		})
	})

	return items, formPayload(doc.Find("div.nav-link").First()), nil
}

func (c *Client) textLite(ctx context.Context, keywords string, opts TextOptions) ([]TextResult, error) {
	p := payload{"q": keywords, "kl": orDefault(opts.Region, "wt-wt")}
	if opts.TimeLimit != "" {
		p["df"] = opts.TimeLimit
	}
	return collectPages(ctx, walk[TextResult]{
		payload:    p,
		maxPages:   5,
		maxResults: opts.MaxResults,
		key:        func(r TextResult) string { return r.URL },
		fetch:      c.textLitePage,
	})
}

// textLitePage fetches and parses one page from the lite backend. The
// lite page lays results out as table rows cycling in groups of four:
// link row, snippet row, url row, spacer.
func (c *Client) textLitePage(ctx context.Context, p payload) ([]TextResult, payload, error) {
	body, err := c.postBackend(ctx, c.endpoints.liteSearch, p)
	if err != nil {
		return nil, nil, err
	}
	if bytes.Contains(body, []byte(noResultsLite)) {
		return nil, nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse lite backend page: %v", ErrProtocol, err)
	}

	var items []TextResult
	var href, title string
	doc.Find("table").Last().Find("tr").Each(func(_ int, row *goquery.Selection) {
		dataRow, _ := row.Attr("data-row")
		n, _ := strconv.Atoi(dataRow)
		switch n%4 + 1 {
		case 1:
			a := row.Find("a").First()
			h, ok := a.Attr("href")
			if !ok || isAdLink(h) {
				href = ""
				return
			}
			href = h
			title = a.Text()
		case 2:
			if href == "" {
				return
			}
			items = append(items, TextResult{
				Title:       normalize(title),
				URL:         normalizeURL(href),
				Description: normalize(strings.TrimSpace(row.Find("td.result-snippet").First().Text())),
			})
		}
	})

	return items, formPayload(doc.Find("form:has(input[value*='ext'])").First()), nil
}

// postBackend issues a paced form POST to a text backend and reads the
// page body.
func (c *Client) postBackend(ctx context.Context, endpoint string, p payload) ([]byte, error) {
	form := url.Values{}
	for k, v := range p {
		form.Set(k, v)
	}
	resp, err := c.paced(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    endpoint,
		Form:   form,
	})
	if err != nil {
		return nil, err
	}
	return resp.ReadAll()
}

// formPayload collects the hidden inputs of a next-page form into the
// payload for the following request. Nil when the selection is empty or
// holds no hidden inputs — no cursor, pagination stops.
func formPayload(form *goquery.Selection) payload {
	if form == nil || form.Length() == 0 {
		return nil
	}
	var next payload
	form.Find("input[type='hidden']").Each(func(_ int, input *goquery.Selection) {
		name, _ := input.Attr("name")
		value, _ := input.Attr("value")
		if name == "" {
			return
		}
		if next == nil {
			next = payload{}
		}
		next[name] = value
	})
	return next
}
