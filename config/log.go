package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	LogLevelEnv  = "PORTA_LOG_LEVEL"
	LogFormatEnv = "PORTA_LOG_FORMAT"
)

var logFormats = map[string]logrus.Formatter{
	"json":       &logrus.JSONFormatter{},
	"text":       &logrus.TextFormatter{DisableColors: true},
	"color-text": &logrus.TextFormatter{ForceColors: true},
}

// ConfigureLogger applies PORTA_LOG_LEVEL and PORTA_LOG_FORMAT to the logrus standard logger.
// An explicit level overrides the environment.  Timestamps are logged in UTC.
func ConfigureLogger(levelMaybe ...string) {
	time.Local = time.UTC

	levelName := os.Getenv(LogLevelEnv)
	if len(levelMaybe) > 0 {
		levelName = levelMaybe[0]
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	format := strings.ToLower(os.Getenv(LogFormatEnv))
	if format == "" {
		format = "color-text"
	}
	formatter, ok := logFormats[format]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"format":  format,
			"options": []string{"json", "text", "color-text"},
		}).Warn("unknown log format")
		return
	}
	logrus.SetFormatter(formatter)
}
