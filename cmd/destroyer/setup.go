package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroyer/internal/config"
)

// loadConfig loads the configuration named by --config and applies --compat.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyCompatPreset(&cfg, config.CompatPreset(flagCompat)); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. A nil fallback discards them.
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "destroyer",
		Level:           level,
	})
	return logger, closer, nil
}
