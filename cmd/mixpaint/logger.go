package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/example/mixpaint/internal/canvas"
)

func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// initLogger routes engine logging to w at the given level.
func initLogger(level string, w io.Writer) error {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	canvas.SetLogger(slog.New(handler))
	return nil
}
