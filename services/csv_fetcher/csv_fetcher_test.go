package csvfetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, "Launch Site,class\n")
	}))
	defer srv.Close()

	body, err := FetchCSV(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != "Launch Site,class\n" {
		t.Fatalf("unexpected body %q", data)
	}
}

func TestFetchCSVStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := FetchCSV(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestFetchCSVTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	body, err := FetchCSV(context.Background(), http.DefaultClient, url)
	if err == nil {
		body.Close()
		t.Fatal("expected error for closed server")
	}
	if !strings.Contains(err.Error(), "error fetching "+url) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}
