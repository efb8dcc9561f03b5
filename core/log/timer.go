// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and reports it through
//              the logger that started it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
}

// WithLevel sets the level the completion entry is written at
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion entry and returns the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.logger.log(t.level, t.operation+" completed", nil, elapsed, t.fields, Fields{"operation": t.operation})
	return elapsed
}

// StopWithError logs a failure entry when err is non-nil, else behaves like Stop
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	elapsed := t.Elapsed()
	t.logger.log(LevelError, t.operation+" failed", err, elapsed, t.fields, Fields{"operation": t.operation})
	return elapsed
}
