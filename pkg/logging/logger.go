/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for type-detective. Provides structured logging with
timestamped files and text/JSON output formats. The inference core stays pure;
all logging happens around it in the CLI and helpers.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // empty means console only
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for the CLI and writer
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger instance. A nil config uses console-only
// text output at info level.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			Colors: true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures level, formatter, and outputs
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	}

	return l.setupFileOutput()
}

// setupFileOutput opens a timestamped log file when an output directory
// is configured and mirrors log lines to stderr
func (l *Logger) setupFileOutput() error {
	l.logger.SetOutput(os.Stderr)
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("type-detective_%s.log", timestamp)
	path := filepath.Join(l.config.OutputDir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stderr, file))

	l.logger.WithFields(logrus.Fields{
		"start_time": l.startTime.Format(time.RFC3339),
		"log_file":   path,
		"level":      l.config.Level,
		"format":     l.config.Format,
	}).Info("type-detective logging initialized")

	return nil
}

// WithFields returns an entry carrying structured fields
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.logger.WithFields(fields)
}

// Debug logs a debug message
func (l *Logger) Debug(args ...interface{}) { l.logger.Debug(args...) }

// Info logs an informational message
func (l *Logger) Info(args ...interface{}) { l.logger.Info(args...) }

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) { l.logger.Warn(args...) }

// Error logs an error message
func (l *Logger) Error(args ...interface{}) { l.logger.Error(args...) }

// Close flushes and closes the log file if one is open
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		return l.fileHandle.Close()
	}
	return nil
}
