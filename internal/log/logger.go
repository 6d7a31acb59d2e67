// Package log provides configurable logging for valet.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/valetgo/valet/internal/config"
)

// Level defines the log level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelFromString = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// Logger provides configurable logging.
type Logger struct {
	mu        sync.Mutex
	level     Level
	output    io.Writer
	file      *os.File
	timestamp bool
}

var defaultLogger = &Logger{
	level:     LevelInfo,
	output:    os.Stderr,
	timestamp: true,
}

// Configure sets up the logger from config.
func Configure(cfg *config.LogConfig) error {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if cfg.Level != "" {
		level, ok := levelFromString[cfg.Level]
		if !ok {
			return fmt.Errorf("invalid log level: %s", cfg.Level)
		}
		defaultLogger.level = level
	}

	if cfg.Timestamp != nil {
		defaultLogger.timestamp = *cfg.Timestamp
	}

	if cfg.Output != "" {
		if defaultLogger.file != nil {
			defaultLogger.file.Close()
		}

		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defaultLogger.file = f
		defaultLogger.output = io.MultiWriter(os.Stderr, f)
	} else {
		defaultLogger.output = os.Stderr
	}

	return nil
}

// SetLevel sets the log level.
func SetLevel(level Level) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.level = level
}

// Close closes any open log file.
func Close() {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	if defaultLogger.file != nil {
		defaultLogger.file.Close()
		defaultLogger.file = nil
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.timestamp {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		fmt.Fprintf(l.output, "[%s] [%s] %s\n", timestamp, levelNames[level], msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", levelNames[level], msg)
	}
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	defaultLogger.log(LevelDebug, format, args...)
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	defaultLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	defaultLogger.log(LevelWarn, format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	defaultLogger.log(LevelError, format, args...)
}

// ParseLevel parses a log level string.
func ParseLevel(s string) (Level, error) {
	level, ok := levelFromString[s]
	if !ok {
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}
