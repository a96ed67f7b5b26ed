// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating application loggers
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Output writer (default: stderr, stdout is reserved for results)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mclog.Logger {
	// Unknown names fall back to the parser defaults
	level, err := mclog.ParseLevel(cfg.Level)
	if err != nil {
		level = mclog.LevelWarn
	}
	format, _ := mclog.ParseFormat(cfg.Format)

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mclog.NewWithConfig(mclog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// FromConfig creates the application logger from the [general] section.
// A non-empty levelOverride replaces general.log_level.
func FromConfig(name string, cfg *config.Config, levelOverride string) *mclog.Logger {
	lc := DefaultLoggerConfig(name)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	if levelOverride != "" {
		lc.Level = levelOverride
	}
	return NewLogger(lc)
}
