package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"placeinfo/internal/browser"
)

// BrowserFetcher loads the page in a headless Chromium and returns the rendered HTML.
type BrowserFetcher struct {
	cfg       browser.Config
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// NewBrowserFetcher creates a BrowserFetcher. The browser is launched per fetch.
func NewBrowserFetcher(opts Options) *BrowserFetcher {
	opts = opts.withDefaults()
	return &BrowserFetcher{
		cfg: browser.Config{
			ProxyURL: opts.ProxyURL,
			Headless: !opts.ShowUI,
		},
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
	}
}

// Fetch navigates to the article for place and waits for the load event.
func (f *BrowserFetcher) Fetch(ctx context.Context, place string) (*FetchResult, error) {
	target := PageURL(f.baseURL, place)
	log := zerolog.Ctx(ctx).With().Str("fetcher", "browser").Str("url", target).Logger()

	b, err := browser.New(f.cfg)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	if proxy := b.ProxyURL(); proxy != "" {
		log.Debug().Str("proxy", proxy).Msg("Browser using proxy")
	}

	page, err := b.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return nil, fmt.Errorf("failed to set user agent: %w", err)
	}
	page = page.Context(ctx).Timeout(f.timeout)
	defer page.CancelTimeout()

	// Redirects do not emit a response event, so the first document
	// response is the final one.
	var status int
	var statusText string
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		statusText = e.Response.StatusText
		return true
	})

	log.Debug().Msg("Navigating")
	if err := page.Navigate(target); err != nil {
		return nil, networkError(target, fmt.Errorf("failed to navigate: %w", err))
	}
	wait()

	if err := page.WaitLoad(); err != nil {
		return nil, networkError(target, fmt.Errorf("failed to wait for page load: %w", err))
	}

	finalURL := target
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	if status >= 400 {
		if statusText == "" {
			statusText = http.StatusText(status)
		}
		return nil, statusError(finalURL, status, fmt.Sprintf("%d %s", status, statusText))
	}

	markup, err := page.HTML()
	if err != nil {
		return nil, networkError(target, fmt.Errorf("failed to read page HTML: %w", err))
	}

	log.Debug().Int("status", status).Int("bytes", len(markup)).Str("final_url", finalURL).Msg("Fetched page")
	return &FetchResult{Markup: markup, URL: finalURL}, nil
}
