// File: level.go
// Title: Log Levels
// Description: Log levels with their long, short and console color names
//              and parsing from configuration strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-03-02 v0.2.0: Level names kept in one table, parse errors are
//                      structured errors

package log

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/commons/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit is written regardless of the minimum level
	LevelAudit
)

type levelNames struct {
	long    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelNames{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
	LevelAudit: {"audit", "AUD", "\033[34m", []string{"aud"}},
}

func (l Level) names() (levelNames, bool) {
	if l < LevelTrace || int(l) >= len(levels) {
		return levelNames{}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	if n, ok := l.names(); ok {
		return n.long
	}
	return "unknown"
}

// ShortString returns the three letter level name used by text output
func (l Level) ShortString() string {
	if n, ok := l.names(); ok {
		return n.short
	}
	return "???"
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if n, ok := l.names(); ok {
		return n.color
	}
	return "\033[0m"
}

// ShouldLog reports whether an entry at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel parses a level name or one of its aliases, ignoring case
func ParseLevel(name string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range levels {
		if s == n.long {
			return Level(i), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, parseError("level", name)
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}

func parseError(kind, input string) error {
	return mdwerror.New(fmt.Sprintf("invalid log %s %q", kind, input)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.parse_" + kind).
		WithDetail("input", input)
}
