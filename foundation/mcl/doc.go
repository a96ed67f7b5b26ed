// File: doc.go
// Title: MCL Engine Package Documentation
// Description: High-level driver that runs MCL programs through the lexer,
//              parser and symbol table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

/*
Package mcl drives complete MCL program runs.

An Engine evaluates a whole program against a fresh symbol table and either
returns every variable the program left behind or a single coded error. A
failed run never yields a partial table.

	engine := mcl.New(mcl.Options{Operators: parser.ArithmeticOperators})
	result, err := engine.Evaluate(ctx, "int a = 10; a = a * 2;")

A Session keeps its symbol table across calls, which is what interactive
front ends need. Each call runs against a copy of the table and commits it
only when the whole input evaluated without error.

ReadSource assembles program text from a reader line by line, terminating
every line with a newline.
*/
package mcl
