// File: level.go
// Title: Log Level Definitions
// Description: Log levels with their long and short names. The short names
//              appear in text output, both are accepted by ParseLevel.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-19

package log

import (
	"strings"
)

// Level orders log messages by importance
type Level int

const (
	// LevelTrace logs every consumed token
	LevelTrace Level = iota

	// LevelDebug logs evaluated statements and rejected programs
	LevelDebug

	// LevelInfo logs lifecycle events such as watched file changes
	LevelInfo

	// LevelWarn logs recoverable problems outside the program text
	LevelWarn

	// LevelError logs failures of the environment, e.g. the history store
	LevelError

	// LevelFatal logs errors that end the process
	LevelFatal
)

// levelNames is indexed by Level
var levelNames = [...]struct {
	long  string
	short string
}{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
}

func (l Level) known() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case name used in configuration files
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used in text output
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts long names, short tags and "warning", ignoring case
// and surrounding space. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if s == "warning" {
		return LevelWarn, nil
	}

	for l, names := range levelNames {
		if s == names.long || s == strings.ToLower(names.short) {
			return Level(l), nil
		}
	}

	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unrecognized level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
