package scraper

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"golang.org/x/net/html"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/utils"
)

// maxBodyBytes bounds how much HTML is read per fetch. Open-graph tags live
// in <head>, so anything past the first megabyte is noise.
const maxBodyBytes = 1 << 20

// PageMetadata is the best-effort open-graph summary of a submitted link.
// Every field may be empty: a fetch that fails entirely still yields a value
// carrying the original URL.
type PageMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	Type        string `json:"type,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

type FetchResult struct {
	Image    *string
	Metadata PageMetadata
}

// Fetcher retrieves open-graph metadata for a user-supplied link. Fetch never
// fails outward; errors collapse into a result holding only the URL.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) FetchResult
}

type fetcher struct {
	log        *logger.Logger
	httpClient *http.Client
}

func NewFetcher(log *logger.Logger) Fetcher {
	fetchLog := log.With("service", "OpenGraphFetcher")

	timeoutSec := utils.GetEnvAsInt("OG_FETCH_TIMEOUT_SECONDS", 5, log)

	// The dial control hook runs against resolved addresses, so redirects and
	// DNS rebinding both hit the same guard.
	dialer := &net.Dialer{
		Timeout: time.Duration(timeoutSec) * time.Second,
		Control: func(network, address string, conn syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return fmt.Errorf("split host port: %w", err)
			}
			ip := net.ParseIP(host)
			if ip == nil || !publicIP(ip) {
				return fmt.Errorf("destination %s not allowed", host)
			}
			return nil
		},
	}

	transport := &http.Transport{
		DialContext:       dialer.DialContext,
		DisableKeepAlives: true,
	}

	return &fetcher{
		log: fetchLog,
		httpClient: &http.Client{
			Timeout:   time.Duration(timeoutSec) * time.Second,
			Transport: transport,
		},
	}
}

func (f *fetcher) Fetch(ctx context.Context, pageURL string) FetchResult {
	fallback := FetchResult{Metadata: PageMetadata{URL: pageURL}}

	parsed, err := url.Parse(pageURL)
	if err != nil || !parsed.IsAbs() {
		f.log.Warn("Skipping metadata fetch for unparsable URL", "url", pageURL)
		return fallback
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		f.log.Warn("Skipping metadata fetch for non-http scheme", "url", pageURL, "scheme", parsed.Scheme)
		return fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NotebookGallery/1.0)")
	req.Header.Set("Accept", "text/html")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.Warn("Metadata fetch failed", "url", pageURL, "error", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Warn("Metadata fetch non-2xx", "url", pageURL, "status", resp.StatusCode)
		return fallback
	}

	meta, err := parseMetadata(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		f.log.Warn("Metadata parse failed", "url", pageURL, "error", err)
		return fallback
	}
	if meta.URL == "" {
		meta.URL = pageURL
	}

	result := FetchResult{Metadata: meta}
	if meta.Image != "" {
		img := meta.Image
		result.Image = &img
	}
	return result
}

// publicIP reports whether dialing ip is acceptable for a user-supplied
// destination. Loopback, link-local, private-range, and unspecified targets
// are all rejected to keep the fetcher from reaching internal services.
func publicIP(ip net.IP) bool {
	switch {
	case ip.IsLoopback(),
		ip.IsUnspecified(),
		ip.IsPrivate(),
		ip.IsLinkLocalUnicast(),
		ip.IsLinkLocalMulticast(),
		ip.IsMulticast():
		return false
	}
	return true
}

func parseMetadata(r io.Reader) (PageMetadata, error) {
	var meta PageMetadata

	doc, err := html.Parse(r)
	if err != nil {
		return meta, err
	}

	var titleText string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				applyMetaTag(&meta, n)
			case "title":
				if titleText == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					titleText = strings.TrimSpace(n.FirstChild.Data)
				}
			case "body":
				// Head is done; og tags in the body are not worth the walk.
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if meta.Title == "" {
		meta.Title = titleText
	}
	return meta, nil
}

func applyMetaTag(meta *PageMetadata, n *html.Node) {
	var key, content string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "property", "name":
			if key == "" {
				key = strings.ToLower(strings.TrimSpace(attr.Val))
			}
		case "content":
			content = strings.TrimSpace(attr.Val)
		}
	}
	if key == "" || content == "" {
		return
	}

	switch key {
	case "og:title", "twitter:title":
		if meta.Title == "" {
			meta.Title = content
		}
	case "og:description", "twitter:description", "description":
		if meta.Description == "" {
			meta.Description = content
		}
	case "og:image", "twitter:image":
		if meta.Image == "" {
			meta.Image = content
		}
	case "og:url":
		if meta.URL == "" {
			meta.URL = content
		}
	case "og:type":
		if meta.Type == "" {
			meta.Type = content
		}
	case "og:site_name":
		if meta.SiteName == "" {
			meta.SiteName = content
		}
	}
}
