package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should load defaults when the environment is empty", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9300, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "scoop", cfg.Database.User)
		assert.Equal(t, "gemma3:4b", cfg.Completion.Model)
		assert.Equal(t, 3, cfg.Geocoder.MaxAttempts)
		assert.Equal(t, 30*time.Minute, cfg.Scheduler.Interval)
		assert.Empty(t, cfg.Feeds.Sources)
		assert.Empty(t, cfg.Redis.Addr)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("SCOOP_CONCURRENCY", "4")
		t.Setenv("SCHEDULER_INTERVAL", "15m")
		t.Setenv("SCOOP_TEST_MODE", "true")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 4, cfg.Pipeline.Concurrency)
		assert.Equal(t, 15*time.Minute, cfg.Scheduler.Interval)
		assert.True(t, cfg.Pipeline.TestMode)
	})

	t.Run("should reject an invalid server port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "99999")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("should reject a non-positive concurrency", func(t *testing.T) {
		t.Setenv("SCOOP_CONCURRENCY", "0")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("should reject malformed feed sources", func(t *testing.T) {
		t.Setenv("SCOOP_FEEDS", "wires=not-a-url")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestParseFeedSources(t *testing.T) {
	t.Run("should parse name=url pairs", func(t *testing.T) {
		sources, err := parseFeedSources("wires=https://wires.example/rss, courier=https://courier.example/feed.xml")

		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, FeedSource{Name: "wires", URL: "https://wires.example/rss"}, sources[0])
		assert.Equal(t, FeedSource{Name: "courier", URL: "https://courier.example/feed.xml"}, sources[1])
	})

	t.Run("should derive a name from a bare URL", func(t *testing.T) {
		sources, err := parseFeedSources("https://wires.example/rss")

		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "wires.example", sources[0].Name)
	})

	t.Run("should skip empty segments", func(t *testing.T) {
		sources, err := parseFeedSources("wires=https://wires.example/rss,,")

		require.NoError(t, err)
		assert.Len(t, sources, 1)
	})

	t.Run("should return nothing for a blank list", func(t *testing.T) {
		sources, err := parseFeedSources("   ")

		require.NoError(t, err)
		assert.Nil(t, sources)
	})
}

func TestMaxArticlesPerRun(t *testing.T) {
	t.Run("should use the test limit in test mode", func(t *testing.T) {
		cfg := &Config{}
		cfg.Pipeline.TestMode = true
		cfg.Pipeline.TestLimit = 3
		cfg.Pipeline.MaxPerRun = 50

		assert.Equal(t, 3, cfg.MaxArticlesPerRun())
	})

	t.Run("should use the normal cap otherwise", func(t *testing.T) {
		cfg := &Config{}
		cfg.Pipeline.MaxPerRun = 50

		assert.Equal(t, 50, cfg.MaxArticlesPerRun())
	})
}

func TestConnString(t *testing.T) {
	t.Run("should build a pgx pool connection string", func(t *testing.T) {
		db := DatabaseConfig{
			Host: "db", Port: "5432", User: "scoop", Password: "secret",
			Name: "scoops", SSLMode: "disable", MaxConns: 10,
		}

		assert.Equal(t,
			"host=db port=5432 user=scoop password=secret dbname=scoops sslmode=disable pool_max_conns=10",
			db.ConnString())
	})
}
