// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and defaults for all scoop-harvester components
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	HTTP       HTTPConfig       `json:"http"`
	Database   DatabaseConfig   `json:"database"`
	Feeds      FeedsConfig      `json:"feeds"`
	Completion CompletionConfig `json:"completion"`
	Geocoder   GeocoderConfig   `json:"geocoder"`
	Redis      RedisConfig      `json:"redis"`
	Pipeline   PipelineConfig   `json:"pipeline"`
	Scheduler  SchedulerConfig  `json:"scheduler"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type HTTPConfig struct {
	Timeout   time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"30s"`
	UserAgent string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"Mozilla/5.0 (compatible; ScoopHarvester/1.0)"`
}

type DatabaseConfig struct {
	Host     string `json:"host" env:"DB_HOST" default:"localhost"`
	Port     string `json:"port" env:"DB_PORT" default:"5432"`
	User     string `json:"user" env:"SCOOP_DB_USER" default:"scoop"`
	Password string `json:"password" env:"SCOOP_DB_PASSWORD" default:""`
	Name     string `json:"name" env:"DB_NAME" default:"scoops"`
	SSLMode  string `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns int    `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
}

// FeedSource is one configured syndication feed.
type FeedSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FeedsConfig struct {
	// Sources come from SCOOP_FEEDS as a comma-separated list of name=url pairs.
	Sources []FeedSource `json:"sources"`
}

type CompletionConfig struct {
	Host    string        `json:"host" env:"COMPLETION_HOST" default:"http://scribe-engine:11434"`
	APIPath string        `json:"api_path" env:"COMPLETION_API_PATH" default:"/api/generate"`
	Model   string        `json:"model" env:"COMPLETION_MODEL" default:"gemma3:4b"`
	Timeout time.Duration `json:"timeout" env:"COMPLETION_TIMEOUT" default:"240s"`
}

type GeocoderConfig struct {
	BaseURL     string        `json:"base_url" env:"GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	Timeout     time.Duration `json:"timeout" env:"GEOCODER_TIMEOUT" default:"10s"`
	MaxAttempts int           `json:"max_attempts" env:"GEOCODER_MAX_ATTEMPTS" default:"3"`
	RetryDelay  time.Duration `json:"retry_delay" env:"GEOCODER_RETRY_DELAY" default:"1s"`
}

type RedisConfig struct {
	// Addr empty disables the progress stream publisher.
	Addr      string `json:"addr" env:"REDIS_ADDR" default:""`
	StreamKey string `json:"stream_key" env:"REDIS_STREAM_KEY" default:"scoop:events:runs"`
}

type PipelineConfig struct {
	// MaxPerRun caps articles processed per invocation; 0 means unlimited.
	MaxPerRun int `json:"max_per_run" env:"SCOOP_MAX_PER_RUN" default:"0"`

	// TestLimit replaces MaxPerRun when TestMode is set.
	TestLimit      int           `json:"test_limit" env:"SCOOP_TEST_LIMIT" default:"3"`
	TestMode       bool          `json:"test_mode" env:"SCOOP_TEST_MODE" default:"false"`
	Concurrency    int           `json:"concurrency" env:"SCOOP_CONCURRENCY" default:"1"`
	ExtractTimeout time.Duration `json:"extract_timeout" env:"SCOOP_EXTRACT_TIMEOUT" default:"20s"`
	IngestingActor string        `json:"ingesting_actor" env:"SCOOP_INGESTING_ACTOR" default:"system/harvester"`
}

type SchedulerConfig struct {
	Interval   time.Duration `json:"interval" env:"SCHEDULER_INTERVAL" default:"30m"`
	RunOnStart bool          `json:"run_on_start" env:"SCHEDULER_RUN_ON_START" default:"true"`
}

func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	// Server config
	config.Server.Port = getEnvInt("SERVER_PORT", 9300)
	config.Server.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	config.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second)
	config.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second)

	// HTTP config
	config.HTTP.Timeout = getEnvDuration("HTTP_TIMEOUT", 30*time.Second)
	config.HTTP.UserAgent = getEnvString("HTTP_USER_AGENT", "Mozilla/5.0 (compatible; ScoopHarvester/1.0)")

	// Database config
	config.Database.Host = getEnvString("DB_HOST", "localhost")
	config.Database.Port = getEnvString("DB_PORT", "5432")
	config.Database.User = getEnvString("SCOOP_DB_USER", "scoop")
	config.Database.Password = getEnvString("SCOOP_DB_PASSWORD", "")
	config.Database.Name = getEnvString("DB_NAME", "scoops")
	config.Database.SSLMode = getEnvString("DB_SSL_MODE", "disable")
	config.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)

	// Feeds config
	sources, err := parseFeedSources(os.Getenv("SCOOP_FEEDS"))
	if err != nil {
		return err
	}
	config.Feeds.Sources = sources

	// Completion config
	config.Completion.Host = getEnvString("COMPLETION_HOST", "http://scribe-engine:11434")
	config.Completion.APIPath = getEnvString("COMPLETION_API_PATH", "/api/generate")
	config.Completion.Model = getEnvString("COMPLETION_MODEL", "gemma3:4b")
	config.Completion.Timeout = getEnvDuration("COMPLETION_TIMEOUT", 240*time.Second)

	// Geocoder config
	config.Geocoder.BaseURL = getEnvString("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	config.Geocoder.Timeout = getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second)
	config.Geocoder.MaxAttempts = getEnvInt("GEOCODER_MAX_ATTEMPTS", 3)
	config.Geocoder.RetryDelay = getEnvDuration("GEOCODER_RETRY_DELAY", time.Second)

	// Redis config
	config.Redis.Addr = getEnvString("REDIS_ADDR", "")
	config.Redis.StreamKey = getEnvString("REDIS_STREAM_KEY", "scoop:events:runs")

	// Pipeline config
	config.Pipeline.MaxPerRun = getEnvInt("SCOOP_MAX_PER_RUN", 0)
	config.Pipeline.TestLimit = getEnvInt("SCOOP_TEST_LIMIT", 3)
	config.Pipeline.TestMode = getEnvBool("SCOOP_TEST_MODE", false)
	config.Pipeline.Concurrency = getEnvInt("SCOOP_CONCURRENCY", 1)
	config.Pipeline.ExtractTimeout = getEnvDuration("SCOOP_EXTRACT_TIMEOUT", 20*time.Second)
	config.Pipeline.IngestingActor = getEnvString("SCOOP_INGESTING_ACTOR", "system/harvester")

	// Scheduler config
	config.Scheduler.Interval = getEnvDuration("SCHEDULER_INTERVAL", 30*time.Minute)
	config.Scheduler.RunOnStart = getEnvBool("SCHEDULER_RUN_ON_START", true)

	return nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("invalid DB_MAX_CONNS: %d", config.Database.MaxConns)
	}

	if config.Geocoder.MaxAttempts <= 0 {
		return fmt.Errorf("invalid GEOCODER_MAX_ATTEMPTS: %d", config.Geocoder.MaxAttempts)
	}

	if config.Pipeline.MaxPerRun < 0 {
		return fmt.Errorf("invalid SCOOP_MAX_PER_RUN: %d", config.Pipeline.MaxPerRun)
	}

	if config.Pipeline.Concurrency <= 0 {
		return fmt.Errorf("invalid SCOOP_CONCURRENCY: %d", config.Pipeline.Concurrency)
	}

	if config.Scheduler.Interval <= 0 {
		return fmt.Errorf("invalid SCHEDULER_INTERVAL: %s", config.Scheduler.Interval)
	}

	return nil
}

// MaxArticlesPerRun returns the effective per-run article cap for the
// configured mode. Zero means unlimited.
func (c *Config) MaxArticlesPerRun() int {
	if c.Pipeline.TestMode {
		return c.Pipeline.TestLimit
	}

	return c.Pipeline.MaxPerRun
}

// ConnString builds the pgx pool connection string.
func (d *DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.MaxConns)
}

// parseFeedSources parses "name=url,name=url" lists. Bare URLs without a
// name get one derived from their host.
func parseFeedSources(raw string) ([]FeedSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var sources []FeedSource

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, url, found := strings.Cut(part, "=")
		if !found {
			url = part
			name = feedNameFromURL(part)
		}

		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)

		if url == "" || !strings.HasPrefix(url, "http") {
			return nil, fmt.Errorf("invalid feed source %q in SCOOP_FEEDS", part)
		}

		sources = append(sources, FeedSource{Name: name, URL: url})
	}

	return sources, nil
}

func feedNameFromURL(rawURL string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	host, _, _ := strings.Cut(trimmed, "/")

	return host
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}
