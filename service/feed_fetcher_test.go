package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

func rssFeed(entries ...string) string {
	body := ""
	for _, e := range entries {
		body += e
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>test feed</title>` + body + `</channel></rss>`
}

func rssEntry(title, link string, published time.Time) string {
	return fmt.Sprintf(
		`<item><title>%s</title><link>%s</link><description>summary of %s</description><pubDate>%s</pubDate></item>`,
		title, link, title, published.Format(time.RFC1123Z))
}

func newTestFetcher(sources []config.FeedSource) FeedFetcherService {
	httpCfg := &config.HTTPConfig{
		Timeout:   5 * time.Second,
		UserAgent: "test-agent",
	}

	return NewFeedFetcherService(sources, httpCfg, testLogger())
}

func TestFetchWindow(t *testing.T) {
	// Feed timestamps carry second precision only.
	now := time.Now().Truncate(time.Second)
	window := domain.IngestionWindow{Start: now.Add(-24 * time.Hour), End: now}

	t.Run("should keep only entries inside the window", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(
				rssEntry("inside", "https://news.example/a", now.Add(-2*time.Hour)),
				rssEntry("too old", "https://news.example/b", now.Add(-48*time.Hour)),
				rssEntry("future", "https://news.example/c", now.Add(2*time.Hour)),
			))
		}))
		defer server.Close()

		fetcher := newTestFetcher([]config.FeedSource{{Name: "wires", URL: server.URL}})

		items, err := fetcher.FetchWindow(context.Background(), window)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "inside", items[0].Title)
		assert.Equal(t, "wires", items[0].SourceFeedName)
	})

	t.Run("should sort the union of feeds newest first", func(t *testing.T) {
		older := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(rssEntry("older", "https://news.example/old", now.Add(-10*time.Hour))))
		}))
		defer older.Close()

		newer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(rssEntry("newer", "https://news.example/new", now.Add(-1*time.Hour))))
		}))
		defer newer.Close()

		fetcher := newTestFetcher([]config.FeedSource{
			{Name: "first", URL: older.URL},
			{Name: "second", URL: newer.URL},
		})

		items, err := fetcher.FetchWindow(context.Background(), window)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "newer", items[0].Title)
		assert.Equal(t, "older", items[1].Title)
	})

	t.Run("should drop entries without a determinable timestamp", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(
				`<item><title>undated</title><link>https://news.example/d</link></item>`,
				rssEntry("dated", "https://news.example/e", now.Add(-time.Hour)),
			))
		}))
		defer server.Close()

		fetcher := newTestFetcher([]config.FeedSource{{Name: "wires", URL: server.URL}})

		items, err := fetcher.FetchWindow(context.Background(), window)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "dated", items[0].Title)
	})

	t.Run("should skip a failing feed but keep the healthy ones", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(rssEntry("survivor", "https://news.example/f", now.Add(-time.Hour))))
		}))
		defer healthy.Close()

		fetcher := newTestFetcher([]config.FeedSource{
			{Name: "broken", URL: broken.URL},
			{Name: "healthy", URL: healthy.URL},
		})

		items, err := fetcher.FetchWindow(context.Background(), window)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "survivor", items[0].Title)
	})

	t.Run("should abort when every feed is unavailable", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer broken.Close()

		fetcher := newTestFetcher([]config.FeedSource{
			{Name: "one", URL: broken.URL},
			{Name: "two", URL: broken.URL + "/other"},
		})

		_, err := fetcher.FetchWindow(context.Background(), window)

		assert.ErrorIs(t, err, domain.ErrAllFeedsUnavailable)
	})

	t.Run("should include entries published exactly at the window boundaries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, rssFeed(
				rssEntry("at start", "https://news.example/g", window.Start),
				rssEntry("at end", "https://news.example/h", window.End),
			))
		}))
		defer server.Close()

		fetcher := newTestFetcher([]config.FeedSource{{Name: "wires", URL: server.URL}})

		items, err := fetcher.FetchWindow(context.Background(), window)

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}
