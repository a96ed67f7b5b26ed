// File: errors.go
// Title: MCL Error Constructors
// Description: Builds the coded errors for each failure of the MCL
//              taxonomy and provides predicates for callers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package parser

import (
	"fmt"
	"unicode/utf8"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
)

// positioned attaches the token position to the message and details
func positioned(message string, tok Token, code mcerror.Code, operation string) *mcerror.Error {
	return mcerror.New(fmt.Sprintf("%s at line %d, column %d", message, tok.Line, tok.Column)).
		WithCode(code).
		WithOperation(operation).
		WithDetail("line", tok.Line).
		WithDetail("column", tok.Column).
		WithDetail("offset", tok.Offset)
}

// newLexicalError reports the character at the start of rest
func newLexicalError(rest string, at Token) *mcerror.Error {
	r, _ := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError {
		r = rune(rest[0])
	}
	return positioned(fmt.Sprintf("unrecognized character %q", r), at, mcerror.CodeLexical, "lexer.NextToken").
		WithDetail("character", string(r))
}

func newExpectedError(expected TokenType, got Token) *mcerror.Error {
	return positioned(fmt.Sprintf("expected %s but got %s", expected, got), got, mcerror.CodeSyntax, "parser.eat").
		WithDetail("expected", expected.String()).
		WithDetail("actual", got.Type.String())
}

func newUnexpectedError(where string, got Token) *mcerror.Error {
	return positioned(fmt.Sprintf("unexpected token %s in %s", got, where), got, mcerror.CodeSyntax, "parser."+where).
		WithDetail("actual", got.Type.String())
}

func newUndeclaredError(name string, at Token, operation string) *mcerror.Error {
	return positioned(fmt.Sprintf("variable '%s' not declared", name), at, mcerror.CodeUndeclaredVariable, operation).
		WithDetail("name", name)
}

func newDivisionByZeroError(at Token) *mcerror.Error {
	return positioned("division by zero", at, mcerror.CodeDivisionByZero, "parser.expression")
}

func newLiteralRangeError(at Token, cause error) *mcerror.Error {
	err := positioned(fmt.Sprintf("numeric literal %s out of range", at.Lexeme), at, mcerror.CodeLiteralRange, "parser.term").
		WithDetail("literal", at.Lexeme)
	if cause != nil {
		err.WithDetail("cause", cause.Error())
	}
	return err
}

// IsLexicalError reports an unrecognized character
func IsLexicalError(err error) bool {
	return mcerror.HasCode(err, mcerror.CodeLexical)
}

// IsSyntaxError reports a token that does not fit the grammar
func IsSyntaxError(err error) bool {
	return mcerror.HasCode(err, mcerror.CodeSyntax)
}

// IsUndeclaredVariableError reports use of a name that was never declared
func IsUndeclaredVariableError(err error) bool {
	return mcerror.HasCode(err, mcerror.CodeUndeclaredVariable)
}

// IsDivisionByZeroError reports a zero divisor
func IsDivisionByZeroError(err error) bool {
	return mcerror.HasCode(err, mcerror.CodeDivisionByZero)
}
