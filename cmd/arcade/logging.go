package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}

// sessionLogger returns the logger for full-screen sessions. Output goes to
// --log-file when set and is discarded otherwise, so it never draws over the
// alternate screen. The returned func closes the file.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close() //nolint:errcheck // Already failing
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil //nolint:errcheck // Best-effort close on exit
}
