package network

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Noooste/azuretls-client"

	"lingua/backend/internal/config"
)

const defaultFetchTimeout = 30 * time.Second

// Client downloads web pages for URL translation. Requests carry a
// Chrome TLS fingerprint and matching headers so content hosts treat the
// fetch like a regular browser visit.
type Client struct {
	timeout time.Duration
}

// NewClient creates a page-fetch client. A non-positive timeout selects
// the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Client{timeout: timeout}
}

// FetchPage downloads the page body. Only http(s) URLs are accepted.
func (c *Client) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}

	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	session.SetTimeout(c.timeout)
	defer session.Close()

	headers := azuretls.OrderedHeaders{
		{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		{"accept-language", "en-US,en;q=0.9"},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-ch-ua-mobile", "?0"},
		{"sec-ch-ua-platform", `"Windows"`},
		{"sec-fetch-dest", "document"},
		{"sec-fetch-mode", "navigate"},
		{"sec-fetch-site", "none"},
		{"user-agent", config.ChromeUserAgent},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            pageURL,
		OrderedHeaders: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", parsed.Host, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", parsed.Host, resp.StatusCode)
	}

	return resp.Body, nil
}
