// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem with user input, e.g. a malformed program
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh is an environment failure such as an unusable database
	SeverityHigh

	// SeverityCritical means the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeIOError:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeUndeclaredVariable, CodeDivisionByZero, CodeLiteralRange,
		CodeInvalidInput, CodeNotFound, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
