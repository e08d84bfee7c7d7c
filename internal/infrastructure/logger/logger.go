package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// DefaultLogger creates a logger using slog.Default()
func DefaultLogger() *Logger {
	return &Logger{
		Logger: slog.Default(),
	}
}

// NewLogger creates a configured logger:
// - level: DEBUG, INFO, WARN, ERROR (default: INFO)
// - format: json or text (default: text)
// - output: stdout, stderr, or file path (default: stdout)
func NewLogger(level, format, output string) *Logger {
	return &Logger{
		Logger: slog.New(newHandler(openOutput(output), level, format)),
	}
}

// NewLoggerFromEnv reads REPORTBOARD_LOG_LEVEL, REPORTBOARD_LOG_FORMAT and
// REPORTBOARD_LOG_OUTPUT.
func NewLoggerFromEnv() *Logger {
	return NewLogger(
		os.Getenv("REPORTBOARD_LOG_LEVEL"),
		os.Getenv("REPORTBOARD_LOG_FORMAT"),
		os.Getenv("REPORTBOARD_LOG_OUTPUT"),
	)
}

// SLog returns the underlying slog logger for libraries that need it
func (l *Logger) SLog() *slog.Logger {
	return l.Logger
}

func openOutput(output string) io.Writer {
	switch output {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fallback to stdout if file can't be opened
		return os.Stdout
	}
	return file
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLogLevel parses log level from string
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultLogger sets the logger as the default slog logger
func SetDefaultLogger(l *Logger) {
	slog.SetDefault(l.Logger)
}
