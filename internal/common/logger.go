package common

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Production writes JSON, anything else writes text.
// When logFile is set the output is mirrored into a size-rotated file; the returned closer
// releases it.
func NewLogger(environment, logFile string) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = io.NopCloser(nil)
	)

	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	if environment == "production" {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})), closer
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})), closer
}
