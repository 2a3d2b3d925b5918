package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// HTTPFetcher fetches pages with a single plain GET request.
type HTTPFetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewHTTPFetcher creates an HTTPFetcher. Redirects follow the client defaults.
func NewHTTPFetcher(opts Options) (*HTTPFetcher, error) {
	opts = opts.withDefaults()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.ProxyURL != "" {
		proxy, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
	}, nil
}

// Fetch performs one GET for place. No retries.
func (f *HTTPFetcher) Fetch(ctx context.Context, place string) (*FetchResult, error) {
	target := PageURL(f.baseURL, place)
	log := zerolog.Ctx(ctx).With().Str("fetcher", "http").Str("url", target).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, networkError(target, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	log.Debug().Msg("Fetching page")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, networkError(target, err)
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	if resp.StatusCode >= 400 {
		log.Debug().Int("status", resp.StatusCode).Msg("Server returned error status")
		return nil, statusError(finalURL, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(target, fmt.Errorf("failed to read response: %w", err))
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Str("final_url", finalURL).
		Msg("Fetched page")

	return &FetchResult{Markup: string(body), URL: finalURL}, nil
}
