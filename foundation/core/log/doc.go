// Package log provides structured logging for mcalc.
//
// Package: log
// Title: mcalc Structured Logging
// Description: Leveled, structured logging with key/value Fields, immutable
//              With* derivation, JSON and text output, and integration with
//              the mcalc error type so that coded errors are logged at a
//              level matching their severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithField("component", "mcl-parser")
//	logger.Debug("statement evaluated", log.Fields{"kind": "declaration"})
//
//	timer := logger.StartTimer("evaluate")
//	defer timer.Stop()
package log
