// Package error provides the structured error type shared by all mcalc packages.
//
// Package: error
// Title: mcalc Error Handling
// Description: Structured errors with codes, severity and key/value details.
//              Every failure of the statement language (lexical, syntax,
//              undeclared variable, division by zero) is reported as an
//              *Error carrying one of the MCL codes, so callers decide
//              whether to abort or report and continue.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Usage:
//
//	err := error.New("variable not declared").
//		WithCode(error.CodeUndeclaredVariable).
//		WithDetail("name", "y")
//
//	if error.HasCode(err, error.CodeUndeclaredVariable) {
//		// report and continue
//	}
package error
