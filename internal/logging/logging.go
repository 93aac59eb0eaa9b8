// Package logging builds the file logger. The terminal belongs to the UI,
// so nothing is written to stdout or stderr once it starts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"wordgrip/internal/config"
)

// New opens cfg.File for appending and returns a logger at cfg.Level. The
// returned closer closes the file.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	if level == zerolog.Disabled {
		return zerolog.Nop(), noClose, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, level), f, nil
}

// NewOrNop is New for startup: when the log file cannot be opened it prints
// one warning to warn and discards logs for the session.
func NewOrNop(cfg config.LogConfig, warn io.Writer) (zerolog.Logger, io.Closer) {
	logger, closer, err := New(cfg)
	if err != nil {
		fmt.Fprintf(warn, "wordgrip: logging disabled: %v\n", err)
		return zerolog.Nop(), noClose
	}
	return logger, closer
}

// NewWriter returns a timestamped logger writing JSON lines to w
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var noClose = closerFunc(func() error { return nil })
