// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mcalc. The MCL codes form
//              the failure taxonomy of the statement language; the remaining
//              codes cover configuration, IO and the run history store.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Statement language (MCL)
	CodeLexical            Code = "MCL_LEXICAL"
	CodeSyntax             Code = "MCL_SYNTAX"
	CodeUndeclaredVariable Code = "MCL_UNDECLARED_VARIABLE"
	CodeDivisionByZero     Code = "MCL_DIVISION_BY_ZERO"
	CodeLiteralRange       Code = "MCL_LITERAL_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// IO and storage
	CodeIOError       Code = "IO_ERROR"
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeUndeclaredVariable, CodeDivisionByZero, CodeLiteralRange,
		CodeConfigError, CodeInvalidConfig,
		CodeIOError, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "syntax"
	case CodeUndeclaredVariable:
		return "semantic"
	case CodeDivisionByZero, CodeLiteralRange:
		return "runtime"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeDatabaseError:
		return "storage"
	default:
		return "generic"
	}
}

// IsLanguageError reports whether the code belongs to the statement language
// taxonomy, i.e. the input program itself is at fault.
func (c Code) IsLanguageError() bool {
	switch c.Category() {
	case "syntax", "semantic", "runtime":
		return true
	default:
		return false
	}
}
