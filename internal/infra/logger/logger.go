// internal/infra/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

var logFile *os.File

// writerHook duplicates every formatted entry to a set of writers (console and log file).
type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Init initializes the global logger based on application configuration.
// The log file is truncated on every start.
func Init(cfg *config.AppConfig) error {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	logFile = f

	Log.SetOutput(io.Discard)
	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.AddHook(&writerHook{
		Writer:    []io.Writer{os.Stdout, f},
		LogLevels: logrus.AllLevels,
	})

	// Set Log Level
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	// Set Log Formatter
	if cfg.Environment == "production" || cfg.Environment == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	Log.Debugf("Log file: %s", cfg.LogFile)
	return nil
}

// Close flushes and closes the log file opened by Init.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Component returns an entry tagged with the name of the emitting component.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
