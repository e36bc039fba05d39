package duckgo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// vqdServer serves a home page carrying a session token.
func vqdServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got == "" {
			t.Error("vqd request without q")
		}
		fmt.Fprint(w, `<html><script>DDG.deep.initialize({vqd="4-token-1234"});</script></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestImages(t *testing.T) {
	home := vqdServer(t)

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if got := q.Get("vqd"); got != "4-token-1234" {
			t.Errorf("vqd = %q", got)
		}
		if got := q.Get("o"); got != "json" {
			t.Errorf("o = %q", got)
		}
		if got := q.Get("p"); got != "-1" {
			t.Errorf("p = %q, want -1 for safesearch off", got)
		}
		if got := q.Get("f"); got != "time:Week,size:Large" {
			t.Errorf("f = %q", got)
		}
		switch requests {
		case 1:
			io.WriteString(w, `{"results":[
				{"title":"Duck","image":"https://img.example/a%20b.jpg","thumbnail":"https://img.example/t1.jpg","url":"https://example.com/a","height":600,"width":800,"source":"Bing"},
				{"title":"Duck again","image":"https://img.example/a%20b.jpg","thumbnail":"https://img.example/t1.jpg","url":"https://example.com/a","height":600,"width":800,"source":"Bing"}
			],"next":"i.js?q=ducks&s=100"}`)
		case 2:
			if got := q.Get("s"); got != "100" {
				t.Errorf("page 2 s = %q, want 100", got)
			}
			fmt.Fprint(w, `{"results":[
				{"title":"Another","image":"https://img.example/c.jpg","thumbnail":"https://img.example/t2.jpg","url":"https://example.com/c","height":100,"width":200,"source":"Bing"}
			],"next":""}`)
		default:
			t.Errorf("unexpected request %d", requests)
		}
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.endpoints.home = home.URL
	c.endpoints.images = srv.URL

	results, err := c.Images(context.Background(), "ducks", ImageOptions{
		SafeSearch: "off",
		TimeLimit:  "Week",
		Size:       "Large",
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2 (duplicate image deduped): %+v", len(results), results)
	}
	if results[0].Image != "https://img.example/a+b.jpg" {
		t.Errorf("Image = %q, want percent-decoded with + for space", results[0].Image)
	}
	if results[0].Height != 600 || results[0].Width != 800 {
		t.Errorf("dimensions = %dx%d", results[0].Width, results[0].Height)
	}
	if results[1].Image != "https://img.example/c.jpg" {
		t.Errorf("second Image = %q", results[1].Image)
	}
}

func TestImagesSafeSearchMapping(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"on", "1"},
		{"moderate", "1"},
		{"off", "-1"},
		{"", "1"}, // default moderate
	}
	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			home := vqdServer(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("p"); got != tt.want {
					t.Errorf("p = %q, want %q", got, tt.want)
				}
				fmt.Fprint(w, `{"results":[],"next":""}`)
			}))
			defer srv.Close()

			c := newTestClient(t)
			c.endpoints.home = home.URL
			c.endpoints.images = srv.URL

			if _, err := c.Images(context.Background(), "ducks", ImageOptions{SafeSearch: tt.level}); err != nil {
				t.Fatalf("Images: %v", err)
			}
		})
	}
}

func TestImagesNoVQD(t *testing.T) {
	home := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>no token here</html>`)
	}))
	defer home.Close()

	c := newTestClient(t)
	c.endpoints.home = home.URL

	_, err := c.Images(context.Background(), "ducks", ImageOptions{})
	if !errors.Is(err, ErrNoVQD) {
		t.Fatalf("err = %v, want ErrNoVQD", err)
	}
}

func TestImagesMalformedPage(t *testing.T) {
	home := vqdServer(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>this is not json</html>`)
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.endpoints.home = home.URL
	c.endpoints.images = srv.URL

	_, err := c.Images(context.Background(), "ducks", ImageOptions{})
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("err = %v, want ErrProtocol", err)
	}
}
