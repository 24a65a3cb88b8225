package metadata

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"linkvault/application/ports"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// maxBodyBytes caps how much of a page is read for scraping. Titles and
// meta tags live in the head, so 512 KiB is plenty.
const maxBodyBytes = 512 * 1024

var (
	titleRe       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	descriptionRe = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]*content=["']([^"']*)["']`)
	ogDescRe      = regexp.MustCompile(`(?is)<meta[^>]+property=["']og:description["'][^>]*content=["']([^"']*)["']`)
	faviconRe     = regexp.MustCompile(`(?is)<link[^>]+rel=["'](?:shortcut )?icon["'][^>]*href=["']([^"']*)["']`)
)

// Fetcher scrapes a page for title, description, and favicon to pre-fill
// the bookmark form.
//
// Everything about it is soft-fail: the scrape is a convenience, so an
// unreachable page, a non-2xx status, a timeout, or an open circuit breaker
// all yield whatever metadata was recovered (possibly none) and never an
// error. The breaker keeps a misbehaving target or a flaky network from
// tying up request handlers on a cosmetic feature.
type Fetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	cache   *resultCache
	timeout time.Duration
	logger  *zap.Logger
}

// NewFetcher creates a metadata fetcher with the given per-fetch timeout
func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "metadata-fetch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		breaker: breaker,
		cache:   newResultCache(15 * time.Minute),
		timeout: timeout,
		logger:  logger,
	}
}

var _ ports.MetadataFetcher = (*Fetcher)(nil)

// Fetch scrapes rawURL and returns whatever metadata it could recover
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (ports.PageMetadata, error) {
	target := normalizeTargetURL(rawURL)
	meta := ports.PageMetadata{URL: target}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		f.logger.Debug("Metadata fetch skipped, unparseable URL", zap.String("url", rawURL))
		return meta, nil
	}

	if cached, ok := f.cache.get(target); ok {
		return cached, nil
	}

	body, err := f.breaker.Execute(func() (interface{}, error) {
		return f.download(ctx, target)
	})
	if err != nil {
		f.logger.Debug("Metadata fetch failed",
			zap.String("url", target),
			zap.Error(err),
		)
		return meta, nil
	}

	page := body.(string)
	meta.Title = extractFirst(titleRe, page)
	meta.Description = extractFirst(descriptionRe, page)
	if meta.Description == "" {
		meta.Description = extractFirst(ogDescRe, page)
	}
	if icon := extractFirst(faviconRe, page); icon != "" {
		meta.IconURL = resolveIconURL(parsed, icon)
	}

	f.cache.set(target, meta)
	return meta, nil
}

func (f *Fetcher) download(ctx context.Context, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; linkvault/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func extractFirst(re *regexp.Regexp, page string) string {
	match := re.FindStringSubmatch(page)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(match[1]))
}

// resolveIconURL turns a relative favicon href into an absolute URL against
// the page origin
func resolveIconURL(page *url.URL, icon string) string {
	ref, err := url.Parse(icon)
	if err != nil {
		return ""
	}
	return page.ResolveReference(ref).String()
}

func normalizeTargetURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return trimmed
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	return trimmed
}
