package ports

import "context"

// PageMetadata is the best-effort result of scraping a URL to pre-fill the
// bookmark form. Any field may be empty.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconURL     string `json:"icon"`
	URL         string `json:"url"`
}

// MetadataFetcher scrapes a page for title, description and favicon.
// Implementations fail softly: timeouts and non-2xx responses yield an
// empty or partial PageMetadata with a nil error, so the caller always
// falls back to manual entry.
type MetadataFetcher interface {
	Fetch(ctx context.Context, rawURL string) (PageMetadata, error)
}
