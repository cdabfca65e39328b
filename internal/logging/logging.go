package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Jeomhps/lodging-api/internal/config"
)

const service = "lodging-api"

// New builds the process logger. Format "json" selects logrus' JSON
// formatter, anything else the text formatter with full timestamps. Unknown
// levels fall back to info.
func New(cfg config.LoggingConfig) *logrus.Entry {
	return NewWithOutput(cfg, os.Stdout)
}

func NewWithOutput(cfg config.LoggingConfig, out io.Writer) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l.WithField("service", service)
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *logrus.Entry {
	return NewWithOutput(config.LoggingConfig{Level: "panic"}, io.Discard)
}
