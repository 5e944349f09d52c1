package service

import (
	"io"
	"log/slog"

	"scoop-harvester/utils/logger"
)

// testLogger discards output; failures assert on behavior, not log lines.
func testLogger() *slog.Logger {
	return logger.NewWithOutput(io.Discard, &logger.LoggerConfig{
		Level:       "error",
		Format:      "text",
		ServiceName: "test",
	})
}
