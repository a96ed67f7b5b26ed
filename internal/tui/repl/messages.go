// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     repl
// Description: Message types for the MCL REPL
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// EntryKind classifies a transcript line
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryResult
	EntryError
	EntrySystem
)

// Entry is one line of the REPL transcript
type Entry struct {
	Kind EntryKind
	Text string
}

// evalResultMsg is sent when a submitted line has been evaluated
type evalResultMsg struct {
	source string
	before []symtab.Entry
	result *mcl.Result
	err    error
}
