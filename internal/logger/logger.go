// Package logger builds the charmbracelet/log logger used by restore-clipboard.
// The program runs detached after a password was copied, so logs are
// discarded unless a log file is configured.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LogFilePerm keeps logs readable by the owner only (0600 = rw-------)
const LogFilePerm os.FileMode = 0600

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// New returns a logger at level writing to file. An empty file yields a
// discarding logger. The returned close func must be called on exit.
func New(level, file string) (*log.Logger, func() error, error) {
	if file == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "restore-clipboard",
		ReportTimestamp: true,
	})
	logger.SetLevel(ParseLevel(level))
	return logger, f.Close, nil
}

// ParseLevel converts string to log level, defaulting to error
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
