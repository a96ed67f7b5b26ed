// File: symtab.go
// Title: MCL Symbol Table
// Description: Flat mapping from variable name to declared type name and
//              current integer value. Owned by one parser at a time and not
//              safe for concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

// Package symtab holds the variables of an MCL program run.
package symtab

import "sort"

// Entry is the state of one variable
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value int64  `json:"value" yaml:"value"`
}

// Table maps variable names to their entries
type Table struct {
	entries map[string]*Entry
}

// New creates an empty table
func New() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Declare creates or replaces the entry for name, overwriting both the type
// name and the value of an earlier declaration.
func (t *Table) Declare(name, typeName string, value int64) {
	t.entries[name] = &Entry{Name: name, Type: typeName, Value: value}
}

// Assign updates the value of a declared variable and keeps its type name.
// It returns false if name was never declared.
func (t *Table) Assign(name string, value int64) bool {
	e, ok := t.entries[name]
	if !ok {
		return false
	}
	e.Value = value
	return true
}

// Lookup returns a copy of the entry for name
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Has reports whether name is declared
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Len returns the number of declared variables
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns copies of all entries sorted by name
func (t *Table) Entries() []Entry {
	result := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Clone returns an independent copy of the table
func (t *Table) Clone() *Table {
	clone := &Table{entries: make(map[string]*Entry, len(t.entries))}
	for name, e := range t.entries {
		copied := *e
		clone.entries[name] = &copied
	}
	return clone
}
