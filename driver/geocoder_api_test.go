package driver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

func newGeocoderClient(baseURL string, maxAttempts int) *GeocoderClient {
	return NewGeocoderClient(&config.GeocoderConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		MaxAttempts: maxAttempts,
		RetryDelay:  time.Millisecond,
	}, "test-agent", testLogger())
}

func TestGeocode(t *testing.T) {
	t.Run("should parse a successful match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

			fmt.Fprint(w, `[{"lat": "52.5200", "lon": "13.4050", "display_name": "Berlin, Germany"}]`)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 3)

		place, err := client.Geocode(context.Background(), "Berlin")

		require.NoError(t, err)
		assert.Equal(t, 52.52, place.Latitude)
		assert.Equal(t, 13.405, place.Longitude)
		assert.Equal(t, "Berlin, Germany", place.DisplayName)
	})

	t.Run("should return not-found for an empty result set without retrying", func(t *testing.T) {
		var calls int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			fmt.Fprint(w, `[]`)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 3)

		_, err := client.Geocode(context.Background(), "Nowhereville")

		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})

	t.Run("should retry transient server errors until one succeeds", func(t *testing.T) {
		var calls int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt64(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			fmt.Fprint(w, `[{"lat": "1.0", "lon": "2.0", "display_name": "Somewhere"}]`)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 3)

		place, err := client.Geocode(context.Background(), "Somewhere")

		require.NoError(t, err)
		assert.Equal(t, 1.0, place.Latitude)
		assert.Equal(t, int64(3), atomic.LoadInt64(&calls))
	})

	t.Run("should give up after the attempt budget", func(t *testing.T) {
		var calls int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 2)

		_, err := client.Geocode(context.Background(), "Berlin")

		assert.ErrorIs(t, err, domain.ErrGeocoderUnavailable)
		assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
	})

	t.Run("should not retry a 4xx rejection", func(t *testing.T) {
		var calls int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 3)

		_, err := client.Geocode(context.Background(), "Berlin")

		assert.Error(t, err)
		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})

	t.Run("should fall back to the query for a blank display name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"lat": "1.0", "lon": "2.0", "display_name": ""}]`)
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 1)

		place, err := client.Geocode(context.Background(), "Berlin")

		require.NoError(t, err)
		assert.Equal(t, "Berlin", place.DisplayName)
	})

	t.Run("should fail on an unparseable response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer server.Close()

		client := newGeocoderClient(server.URL, 3)

		_, err := client.Geocode(context.Background(), "Berlin")

		assert.Error(t, err)
	})
}

func TestProgressPublisher(t *testing.T) {
	t.Run("should be disabled without a Redis address", func(t *testing.T) {
		publisher := NewProgressPublisher(&config.RedisConfig{}, testLogger())

		assert.Nil(t, publisher)
	})

	t.Run("should drop events and close cleanly when nil", func(t *testing.T) {
		var publisher *ProgressPublisher

		publisher.Publish(context.Background(), "run-1", "phase", "message")

		assert.NoError(t, publisher.Close())
	})
}
