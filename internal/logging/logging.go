package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level orders log messages by severity
type Level int

// Log levels
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel = LevelInfo
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// ParseLevel maps a level name (debug, info, warn, error) to its Level
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// SetLevel sets the global logging level
func SetLevel(level Level) {
	currentLevel = level
}

// SetOutput redirects all log messages to w
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	logf(LevelInfo, "", format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logf(LevelError, "[ERROR] ", format, args...)
}

func logf(level Level, prefix, format string, args ...interface{}) {
	if level < currentLevel {
		return
	}
	logger.Printf(prefix+format, args...)
}
