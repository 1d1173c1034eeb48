package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPSourceLoadsCSV(t *testing.T) {
	var gotUserAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(testHeader + "\n" +
			"Remote Player,Arsenal,FW,25,900,9,3,4.5,2.1,40,20,30,25,10,5,4,50,8,80.5,45.2\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPConfig{URL: srv.URL, Timeout: time.Second})
	if src.Name() != "http" {
		t.Fatalf("unexpected source name %q", src.Name())
	}

	players, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if len(players) != 1 || players[0].Name != "Remote Player" {
		t.Fatalf("unexpected players %+v", players)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("expected default user agent, got %q", gotUserAgent)
	}
	if gotAccept != "text/csv" {
		t.Fatalf("expected csv accept header, got %q", gotAccept)
	}
}

func TestHTTPSourceCustomUserAgent(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(testHeader + "\n"))
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPConfig{URL: srv.URL, UserAgent: "stats-bot/2.0"})
	if _, err := src.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if gotUserAgent != "stats-bot/2.0" {
		t.Fatalf("expected custom user agent, got %q", gotUserAgent)
	}
}

func TestHTTPSourceUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(HTTPConfig{URL: srv.URL}).Load(context.Background())
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", statusErr.StatusCode)
	}
}

func TestHTTPSourceContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPSource(HTTPConfig{URL: srv.URL}).Load(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
