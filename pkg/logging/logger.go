package logging

import "time"

// Logger defines the structured logging surface used across the library.
// The production implementation is backed by zap (see NewZapLogger); tests
// use NewNop.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithFields returns a logger that attaches the given fields to every
	// entry it emits.
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair in a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Field constructors for common types.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err.Error()}
}

// nopLogger discards everything. Used as the default in tests and wherever
// a caller passes no logger.
type nopLogger struct{}

// NewNop returns a logger that discards all entries.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Field)     {}
func (nopLogger) Info(string, ...Field)      {}
func (nopLogger) Warn(string, ...Field)      {}
func (nopLogger) Error(string, ...Field)     {}
func (nopLogger) WithFields(...Field) Logger { return nopLogger{} }
