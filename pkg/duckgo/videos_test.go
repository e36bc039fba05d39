package duckgo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVideos(t *testing.T) {
	home := vqdServer(t)

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if got := q.Get("p"); got != "-2" {
			t.Errorf("p = %q, want -2 for safesearch off", got)
		}
		if got := q.Get("f"); got != "videoDefinition:high,videoDuration:short" {
			t.Errorf("f = %q", got)
		}
		switch requests {
		case 1:
			fmt.Fprint(w, `{"results":[
				{"content":"https://www.youtube.com/watch?v=1","title":"Duck video","duration":"1:23","publisher":"YouTube","statistics":{"viewCount":1000}}
			],"next":"v.js?q=ducks&s=60"}`)
		default:
			if got := q.Get("s"); got != "60" {
				t.Errorf("page 2 s = %q, want 60", got)
			}
			fmt.Fprint(w, `{"results":[
				{"content":"https://www.youtube.com/watch?v=2","title":"Another duck","statistics":{"viewCount":5}}
			],"next":""}`)
		}
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.endpoints.home = home.URL
	c.endpoints.videos = srv.URL

	results, err := c.Videos(context.Background(), "ducks", VideoOptions{
		SafeSearch: "off",
		Resolution: "high",
		Duration:   "short",
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("Videos: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(results), results)
	}
	if results[0].Content != "https://www.youtube.com/watch?v=1" {
		t.Errorf("Content = %q", results[0].Content)
	}
	if results[0].Statistics.ViewCount != 1000 {
		t.Errorf("ViewCount = %d", results[0].Statistics.ViewCount)
	}
}

func TestVideosSafeSearchMapping(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"on", "1"},
		{"moderate", "-1"},
		{"off", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
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
			c.endpoints.videos = srv.URL

			if _, err := c.Videos(context.Background(), "ducks", VideoOptions{SafeSearch: tt.level}); err != nil {
				t.Fatalf("Videos: %v", err)
			}
		})
	}
}

func TestVideosParamValidation(t *testing.T) {
	c := newTestClient(t)

	if _, err := c.Videos(context.Background(), "", VideoOptions{}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("blank keywords err = %v, want ErrInvalidParams", err)
	}
	if _, err := c.Videos(context.Background(), "ducks", VideoOptions{Resolution: "4k"}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("bad resolution err = %v, want ErrInvalidParams", err)
	}
	if _, err := c.Videos(context.Background(), "ducks", VideoOptions{License: "mit"}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("bad license err = %v, want ErrInvalidParams", err)
	}
}
