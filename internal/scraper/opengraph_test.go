package scraper

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
)

func newTestFetcher(t *testing.T, client *http.Client) *fetcher {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	// Plain client so the loopback test server is reachable.
	return &fetcher{log: log, httpClient: client}
}

func TestFetchExtractsOpenGraphTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html><head>
<title>Fallback Title</title>
<meta property="og:title" content="Shared Notebook">
<meta property="og:description" content="A research notebook">
<meta property="og:image" content="https://cdn.example.com/cover.png">
<meta property="og:type" content="website">
<meta property="og:site_name" content="NotebookLM">
</head><body><p>hello</p></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.Client())
	result := f.Fetch(context.Background(), srv.URL)

	if result.Metadata.Title != "Shared Notebook" {
		t.Fatalf("title: want=%q got=%q", "Shared Notebook", result.Metadata.Title)
	}
	if result.Metadata.Description != "A research notebook" {
		t.Fatalf("description: got=%q", result.Metadata.Description)
	}
	if result.Image == nil || *result.Image != "https://cdn.example.com/cover.png" {
		t.Fatalf("image: got=%v", result.Image)
	}
	if result.Metadata.SiteName != "NotebookLM" {
		t.Fatalf("site name: got=%q", result.Metadata.SiteName)
	}
	if result.Metadata.URL != srv.URL {
		t.Fatalf("url: want=%q got=%q", srv.URL, result.Metadata.URL)
	}
}

func TestFetchFallsBackToTitleTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Plain Page</title></head><body></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.Client())
	result := f.Fetch(context.Background(), srv.URL)
	if result.Metadata.Title != "Plain Page" {
		t.Fatalf("title: want=%q got=%q", "Plain Page", result.Metadata.Title)
	}
	if result.Image != nil {
		t.Fatalf("image: want nil got %q", *result.Image)
	}
}

func TestFetchNon2xxFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.Client())
	result := f.Fetch(context.Background(), srv.URL)
	if result.Metadata.Title != "" || result.Image != nil {
		t.Fatalf("non-2xx fetch leaked metadata: %+v", result)
	}
	if result.Metadata.URL != srv.URL {
		t.Fatalf("fallback url: want=%q got=%q", srv.URL, result.Metadata.URL)
	}
}

func TestFetchRejectsNonHTTPSchemes(t *testing.T) {
	f := newTestFetcher(t, http.DefaultClient)

	for _, raw := range []string{"ftp://example.com/x", "javascript:alert(1)", "not a url at all", "/relative/path"} {
		result := f.Fetch(context.Background(), raw)
		if result.Metadata.URL != raw {
			t.Fatalf("fallback for %q: want url echoed got %q", raw, result.Metadata.URL)
		}
		if result.Metadata.Title != "" || result.Image != nil {
			t.Fatalf("fallback for %q carried metadata: %+v", raw, result)
		}
	}
}

func TestFetchUnreachableHostFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	f := newTestFetcher(t, http.DefaultClient)
	result := f.Fetch(context.Background(), addr)
	if result.Metadata.URL != addr {
		t.Fatalf("fallback url: want=%q got=%q", addr, result.Metadata.URL)
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><head></head></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.Client())
	f.Fetch(context.Background(), srv.URL)
	if !strings.Contains(gotUA, "NotebookGallery/1.0") {
		t.Fatalf("user agent: got=%q", gotUA)
	}
}

func TestParseMetadataFirstValueWins(t *testing.T) {
	meta, err := parseMetadata(strings.NewReader(`<html><head>
<meta property="og:title" content="First">
<meta property="og:title" content="Second">
<meta name="twitter:title" content="Third">
<meta name="description" content="meta description">
<meta property="og:description" content="og description">
</head></html>`))
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if meta.Title != "First" {
		t.Fatalf("title: want=First got=%q", meta.Title)
	}
	if meta.Description != "meta description" {
		t.Fatalf("description: want first seen got=%q", meta.Description)
	}
}

func TestParseMetadataIgnoresBodyTags(t *testing.T) {
	meta, err := parseMetadata(strings.NewReader(`<html><head></head><body>
<meta property="og:title" content="Injected">
</body></html>`))
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("body meta tag applied: got=%q", meta.Title)
	}
}

func TestPublicIP(t *testing.T) {
	cases := []struct {
		addr string
		want bool
	}{
		{addr: "8.8.8.8", want: true},
		{addr: "93.184.216.34", want: true},
		{addr: "2001:4860:4860::8888", want: true},
		{addr: "127.0.0.1", want: false},
		{addr: "::1", want: false},
		{addr: "0.0.0.0", want: false},
		{addr: "10.1.2.3", want: false},
		{addr: "172.16.0.1", want: false},
		{addr: "192.168.1.1", want: false},
		{addr: "169.254.169.254", want: false},
		{addr: "224.0.0.1", want: false},
		{addr: "fe80::1", want: false},
	}
	for _, tc := range cases {
		ip := net.ParseIP(tc.addr)
		if ip == nil {
			t.Fatalf("bad test address %q", tc.addr)
		}
		if got := publicIP(ip); got != tc.want {
			t.Fatalf("publicIP(%s): want=%v got=%v", tc.addr, tc.want, got)
		}
	}
}
