package scraper

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"placeinfo/internal/fetcher"
	"placeinfo/internal/infobox"
	"placeinfo/internal/selector"
)

// Content is a scrape result renderable in every output format.
type Content interface {
	ToHTML() (string, error)
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
}

// Scraper runs the fetch, parse and select pipeline for one place.
type Scraper struct {
	fetcher fetcher.Fetcher
	spec    selector.Spec
}

// New creates a Scraper. A nil spec means selector.DefaultSpec.
func New(f fetcher.Fetcher, spec selector.Spec) *Scraper {
	if spec == nil {
		spec = selector.DefaultSpec
	}
	return &Scraper{fetcher: f, spec: spec}
}

// Scrape fetches the article for place and extracts its summary fields.
// Only fetch failures are returned as errors; a page without an infobox
// is a successful, empty result.
func (s *Scraper) Scrape(ctx context.Context, place string) (*InfoboxContent, error) {
	if place == "" {
		return nil, fmt.Errorf("place name is required")
	}

	result, err := s.fetcher.Fetch(ctx, place)
	if err != nil {
		return nil, err
	}

	parsed := infobox.Parse(result.Markup)
	selected := s.spec.Select(parsed.Fields)

	zerolog.Ctx(ctx).Debug().
		Str("title", parsed.Title).
		Int("infobox_rows", parsed.Fields.Len()).
		Int("selected", selected.Len()).
		Msg("Parsed infobox")

	title := parsed.Title
	if title == "" {
		title = place
	}
	return NewInfoboxContent(title, result.URL, parsed.Fields, selected), nil
}
