// File: logger.go
// Title: Core Logger Implementation
// Description: Structured logger with contextual fields, pluggable output
//              formats and integration with the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-03-02 v0.2.0: Immutable loggers sharing one write lock, correlation
//                      id replaces request/user ids, async mode removed

package log

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/commons/core/error"
)

// Logger writes structured entries. A Logger is never modified after
// construction; the With* methods return derived loggers that share the
// output and its write lock.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	writeMu       *sync.Mutex
	name          string
	fields        Fields
	correlationID string
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // defaults to os.Stdout
	Name   string
}

// New creates a logger writing JSON to stdout at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    output,
		writeMu:   &sync.Mutex{},
		name:      config.Name,
	}
}

func (l *Logger) derive(change func(*Logger)) *Logger {
	clone := *l
	clone.fields = l.fields.Merge(nil)
	change(&clone)
	return &clone
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithName returns a logger whose entries carry name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = c.fields.Merge(fields) })
}

// WithCorrelationID returns a logger tagging every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = id })
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, 0, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, 0, fields...) }
func (l *Logger) Info(message string, fields ...Fields) { l.log(LevelInfo, message, nil, 0, fields...) }
func (l *Logger) Warn(message string, fields ...Fields) { l.log(LevelWarn, message, nil, 0, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, 0, fields...) }

// Audit logs message regardless of the minimum level
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, 0, fields...)
}

// LogError logs err at a level derived from its severity: low is info,
// medium is warn, everything else and plain errors are error. Structured
// errors contribute their code and details as error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err, 0)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, mdwErr.Message(), err, 0, fields)
}

// StartTimer starts a timer that logs at debug level when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now(), level: LevelDebug}
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = duration
	entry.Fields = l.fields.Merge(nil)
	for _, f := range fields {
		entry.Fields = entry.Fields.Merge(f)
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.writeMu.Lock()
	_, _ = l.output.Write(formatted)
	l.writeMu.Unlock()
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the process wide default logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}
