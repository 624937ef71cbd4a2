// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airdesk/config"
	"github.com/sirupsen/logrus"
)

// Setup applies cfg to the standard logrus logger. Logs go to stderr so
// they never interleave with menu output on stdout.
func Setup(cfg config.LogConfig) error {
	return configure(logrus.StandardLogger(), cfg, os.Stderr)
}

func configure(l *logrus.Logger, cfg config.LogConfig, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	switch cfg.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	l.SetLevel(level)
	l.SetOutput(out)
	return nil
}
