package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output keeps log aggregation simple;
// swap the handler here if a deployment needs text output.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
