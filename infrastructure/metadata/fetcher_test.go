package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title> Example Domain </title>
<meta name="description" content="An example page &amp; nothing more">
<link rel="icon" href="/static/favicon.ico">
</head>
<body>hello</body>
</html>`

func TestFetcherExtractsMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	fetcher := NewFetcher(2*time.Second, zap.NewNop())
	meta, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Example Domain", meta.Title)
	assert.Equal(t, "An example page & nothing more", meta.Description)
	assert.Equal(t, srv.URL+"/static/favicon.ico", meta.IconURL)
}

func TestFetcherSoftFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := NewFetcher(2*time.Second, zap.NewNop())
	meta, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err, "scrape failures must not surface as errors")
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
	assert.Equal(t, srv.URL, meta.URL)
}

func TestFetcherSoftFailsOnUnreachableHost(t *testing.T) {
	fetcher := NewFetcher(200*time.Millisecond, zap.NewNop())
	meta, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1")

	require.NoError(t, err)
	assert.Empty(t, meta.Title)
}

func TestFetcherNormalizesSchemelessURL(t *testing.T) {
	fetcher := NewFetcher(200*time.Millisecond, zap.NewNop())
	meta, err := fetcher.Fetch(context.Background(), "example.invalid/page")

	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid/page", meta.URL)
}

func TestFetcherCachesResults(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	fetcher := NewFetcher(2*time.Second, zap.NewNop())
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	_, err = fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second fetch should be served from cache")
}
