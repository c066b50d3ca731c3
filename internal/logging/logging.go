package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init installs a text handler as the default logger. An empty filename logs
// to stderr. The returned closer releases the log file.
func Init(levelStr string, filename string) (io.Closer, error) {
	level.Set(ParseLevel(levelStr))

	var out io.WriteCloser = nopCloser{os.Stderr}
	if filename != "" {
		logfile, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = logfile
	}

	slog.SetDefault(New(out))
	return out, nil
}

func New(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
