package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCSSOrder(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		// The first stylesheet finishes last.
		if r.URL.Path == "/a.css" {
			time.Sleep(100 * time.Millisecond)
		}
		w.Header().Set("Content-Type", "text/css")
		fmt.Fprintf(w, "/* %s */", strings.TrimPrefix(r.URL.Path, "/"))
	})
	c := newTestClient(t, Config{})

	got, err := c.CSS(context.Background(), []string{srv.URL + "/a.css", srv.URL + "/b.css", srv.URL + "/c.css"})
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	want := "/* a.css */\n/* b.css */\n/* c.css */"
	if got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestCSSEmpty(t *testing.T) {
	got, err := newTestClient(t, Config{}).CSS(context.Background(), nil)
	if err != nil || got != "" {
		t.Errorf("expected (\"\", nil), got (%q, %v)", got, err)
	}
}

func TestCSSSingle(t *testing.T) {
	srv := serve(t, body("text/css", "a{}"))
	got, err := newTestClient(t, Config{}).CSS(context.Background(), []string{srv.URL})
	if err != nil || got != "a{}" {
		t.Errorf("expected (\"a{}\", nil), got (%q, %v)", got, err)
	}
}

func TestCSSFailFast(t *testing.T) {
	cancelled := make(chan struct{}, 1)
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad.css":
			http.Error(w, "nope", http.StatusBadGateway)
		default:
			select {
			case <-r.Context().Done():
				cancelled <- struct{}{}
			case <-time.After(5 * time.Second):
				fmt.Fprint(w, "late{}")
			}
		}
	})
	c := newTestClient(t, Config{FailOnStatus: true})

	start := time.Now()
	got, err := c.CSS(context.Background(), []string{srv.URL + "/slow.css", srv.URL + "/bad.css"})
	if err == nil {
		t.Fatalf("expected error, got %q", got)
	}
	if got != "" {
		t.Errorf("expected no partial result, got %q", got)
	}
	if StatusCode(err) != http.StatusBadGateway {
		t.Errorf("expected the failing fetch's error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("expected fail-fast, took %v", elapsed)
	}

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Error("expected the in-flight fetch to be cancelled")
	}
}

func TestCSSKeepsNonSuccessBodies(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		if r.URL.Path == "/b.css" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "/* missing */")
			return
		}
		fmt.Fprint(w, "a{}")
	})

	got, err := newTestClient(t, Config{}).CSS(context.Background(), []string{srv.URL + "/a.css", srv.URL + "/b.css"})
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	if want := "a{}\n/* missing */"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestCSSParentCancelled(t *testing.T) {
	srv := serve(t, body("text/css", "a{}"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, Config{}).CSS(ctx, []string{srv.URL, srv.URL})
	if !IsTimeout(err) {
		t.Errorf("expected cancellation to be reported as timeout, got %v", err)
	}
}
