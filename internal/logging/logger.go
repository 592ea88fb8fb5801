// Package logging provides a logging abstraction layer that decouples the
// engine from specific logging frameworks. This keeps the classification and
// aggregation packages testable without a real logger attached.
package logging

// Logger is the structured logging interface used throughout the engine.
// Fatal-style methods are deliberately absent: the engine reports errors up
// the call chain and only main decides whether to exit.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithFields returns a new logger with additional fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
// Fields provide context to log messages without cluttering the message text.
type Field struct {
	Key   string
	Value interface{}
}
