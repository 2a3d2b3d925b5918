package fetcher

import (
	"context"
	"strings"
	"time"
)

const (
	// DefaultHost is the wiki host articles are fetched from.
	DefaultHost = "en.wikipedia.org"
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 20 * time.Second
	// UserAgent identifies this client to the wiki.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36 placeinfo/1.0"
)

// FetchResult is a fetched article page.
type FetchResult struct {
	Markup string // raw page HTML
	URL    string // final URL after redirects
}

// Fetcher fetches the article page for a place name.
type Fetcher interface {
	Fetch(ctx context.Context, place string) (*FetchResult, error)
}

// Options configure a fetch backend.
type Options struct {
	BaseURL   string // e.g. https://en.wikipedia.org/wiki/
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
	ShowUI    bool // browser backend only
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = BaseURL(DefaultHost)
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = UserAgent
	}
	return o
}

// BaseURL returns the article path prefix for host.
func BaseURL(host string) string {
	return "https://" + host + "/wiki/"
}

// PageURL builds the article URL for place. Spaces become underscores;
// nothing else is escaped.
func PageURL(baseURL, place string) string {
	return baseURL + strings.ReplaceAll(place, " ", "_")
}
