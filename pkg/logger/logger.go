package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Shared logrus logger for the service. Init is called once during startup
// (level can be controlled with LOG_LEVEL: debug|info|warn|error).

var log = logrus.New()

// Init configures the global logger. Unknown or empty levels fall back to info.
func Init(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// L returns the shared logger for callers that want structured fields.
func L() *logrus.Logger { return log }

// WithField is a shorthand for L().WithField.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

func Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { log.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { log.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { log.Fatalf(format, v...) }

func Info(msg string) { log.Info(msg) }
func Warn(msg string) { log.Warn(msg) }

// LevelString returns the current level as text.
func LevelString() string { return log.GetLevel().String() }
