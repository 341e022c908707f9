package cli

import (
	"io"

	log "github.com/sirupsen/logrus"

	"focustasks/internal/config"
)

// NewLogger builds the process logger. Warnings and above by default,
// debug with --debug; a configured log_level wins over both.
func NewLogger(cfg *config.Config, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	logger.SetLevel(log.WarnLevel)
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.WithField("log_level", cfg.LogLevel).Warn("ignoring unknown log level")
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}
