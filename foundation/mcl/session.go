// File: session.go
// Title: MCL Evaluation Session
// Description: Symbol table that persists across evaluations with
//              all-or-nothing commits, used by the REPL and file watcher.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package mcl

import (
	"context"
	"sync"

	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// Session evaluates successive inputs against a shared symbol table
type Session struct {
	engine  *Engine
	symbols *symtab.Table
	mutex   sync.Mutex
}

// NewSession creates a session with an empty symbol table
func (e *Engine) NewSession() *Session {
	return &Session{
		engine:  e,
		symbols: symtab.New(),
	}
}

// Execute evaluates source against a copy of the session table and
// replaces the table with the copy only if evaluation succeeded. The
// returned Result lists every session variable, not only the ones source
// touched.
func (s *Session) Execute(ctx context.Context, source string) (*Result, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	working := s.symbols.Clone()
	result, err := s.engine.evaluate(ctx, source, working)
	if err != nil {
		return nil, err
	}

	s.symbols = working
	return result, nil
}

// Variables returns the committed variables sorted by name
func (s *Session) Variables() []symtab.Entry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.symbols.Entries()
}

// Reset discards all variables
func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.symbols = symtab.New()
}
