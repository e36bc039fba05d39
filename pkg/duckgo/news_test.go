package duckgo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNews(t *testing.T) {
	home := vqdServer(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("noamp"); got != "1" {
			t.Errorf("noamp = %q, want 1", got)
		}
		if got := q.Get("df"); got != "w" {
			t.Errorf("df = %q, want w", got)
		}
		if got := q.Get("p"); got != "-1" {
			t.Errorf("p = %q, want -1 for moderate", got)
		}
		fmt.Fprint(w, `{"results":[
			{"date":1724716800,"title":"Ducks migrate","excerpt":"They flew <b>south</b>","url":"https://news.example/a","image":"https://news.example/a.jpg","source":"Example News"}
		],"next":""}`)
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.endpoints.home = home.URL
	c.endpoints.news = srv.URL

	results, err := c.News(context.Background(), "ducks", NewsOptions{TimeLimit: "w"})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	r := results[0]
	if want := time.Unix(1724716800, 0).UTC(); !r.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if r.Body != "They flew south" {
		t.Errorf("Body = %q, want tags stripped", r.Body)
	}
	if r.URL != "https://news.example/a" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.Source != "Example News" {
		t.Errorf("Source = %q", r.Source)
	}
}

func TestNewsParamValidation(t *testing.T) {
	c := newTestClient(t)

	if _, err := c.News(context.Background(), " ", NewsOptions{}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("blank keywords err = %v, want ErrInvalidParams", err)
	}
	if _, err := c.News(context.Background(), "ducks", NewsOptions{TimeLimit: "y"}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("bad timelimit err = %v, want ErrInvalidParams", err)
	}
}
