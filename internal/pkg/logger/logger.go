package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type simpleLogger struct {
	logger *log.Logger
	debug  bool
}

// New creates a new simple logger writing to stdout.
// Debug output is suppressed unless the DEBUG environment variable is set.
func New() Logger {
	return &simpleLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile),
		debug:  os.Getenv("DEBUG") != "",
	}
}

// Error logs an error message with the 🔴 emoji.
func (l *simpleLogger) Error(msg string, err error) {
	l.logger.Output(2, fmt.Sprintf("🔴 ERROR: %s - %v", msg, err))
}

// Warn logs a warning message with the ⚠️ emoji.
func (l *simpleLogger) Warn(msg string) {
	l.logger.Output(2, fmt.Sprintf("⚠️ WARN: %s", msg))
}

// Info logs an informational message.
func (l *simpleLogger) Info(msg string) {
	l.logger.Output(2, fmt.Sprintf("INFO: %s", msg))
}

// Debug logs a debug message when debug output is enabled.
func (l *simpleLogger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.logger.Output(2, fmt.Sprintf("DEBUG: %s", msg))
}
