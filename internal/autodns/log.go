package autodns

import (
	"fmt"
	"log/slog"
	"os"
)

// NewLogger builds a structured logger from the log configuration. JSON is
// the default format, console is for reading locally.
func NewLogger(conf LogConfig) (*slog.Logger, error) {
	var level slog.Level
	switch conf.Level {
	case LogLevelInfo, LogLevelDefault:
		level = slog.LevelInfo
	case LogLevelDebug:
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %s", conf.Level)
	}

	var output slog.Handler
	switch conf.Format {
	case LogFormatJSON, LogFormatDefault:
		output = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	case LogFormatConsole:
		output = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", conf.Format)
	}
	return slog.New(output), nil
}
