package duckgo

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

var stripTags = regexp.MustCompile(`<.*?>`)

// normalize strips HTML tags and decodes entities from a raw snippet.
func normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return html.UnescapeString(stripTags.ReplaceAllString(raw, ""))
}

// normalizeURL percent-decodes a URL and re-encodes spaces as '+'.
func normalizeURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}
	return strings.ReplaceAll(decoded, " ", "+")
}

// expandProxyAlias maps the "tb" shorthand to the local Tor Browser
// socks proxy.
func expandProxyAlias(proxy string) string {
	if proxy == "tb" {
		return "socks5://127.0.0.1:9150"
	}
	return proxy
}
