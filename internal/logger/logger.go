package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"agriexplorer/internal/config"
)

// New builds the process logger. Unknown levels fall back to info.
func New(cfg config.Logger, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	log.Out = out

	switch strings.ToUpper(cfg.Format) {
	case "JSON":
		log.Formatter = &logrus.JSONFormatter{DisableTimestamp: cfg.DisableTimestamp}
	default:
		log.Formatter = &logrus.TextFormatter{
			DisableTimestamp: cfg.DisableTimestamp,
			FullTimestamp:    true,
		}
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.Level = level
	return log
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}
