// ABOUTME: This file provides slog-based structured logging for scoop-harvester
// ABOUTME: Level and format are env-driven; JSON output is the production default
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig represents logger configuration loaded from the environment.
type LoggerConfig struct {
	Level       string `env:"LOG_LEVEL" default:"info"`
	Format      string `env:"LOG_FORMAT" default:"json"`
	ServiceName string `env:"SERVICE_NAME" default:"scoop-harvester"`
}

// LoadConfigFromEnv loads logger configuration from environment variables.
func LoadConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Format:      getEnvOrDefault("LOG_FORMAT", "json"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "scoop-harvester"),
	}
}

// Init creates the application logger based on configuration.
func Init(config *LoggerConfig) *slog.Logger {
	return NewWithOutput(os.Stdout, config)
}

// NewWithOutput creates a logger writing to the given output. Used by tests
// to capture log lines.
func NewWithOutput(output io.Writer, config *LoggerConfig) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: parseLevel(config.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level values for log-forwarder compatibility.
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(level.String()))}
				}
			}

			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}

	return slog.New(handler).With("service", config.ServiceName)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
