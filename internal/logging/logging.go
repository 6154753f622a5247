// Package logging builds the logrus logger shared by the CLI and the chat server.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mpm/ghbot/internal/config"
)

// New creates a logger from the logging section of the config. Unknown levels
// fall back to info; format is "json" or anything else for text.
func New(cfg config.LoggingConfig, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
