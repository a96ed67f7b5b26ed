// File: token.go
// Title: MCL Token Definitions
// Description: Defines the closed set of MCL token types and the Token
//              value produced by the lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package parser

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals and names
	TokenInteger    // 42
	TokenDecimal    // 3.14
	TokenIdentifier // x, total_1
	TokenKeyword    // int, float, double

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /

	// Punctuation
	TokenEquals    // =
	TokenSemicolon // ;
)

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Lexeme string    // Exact source text
	Offset int       // Byte offset in input
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Lexeme)
}

// String returns the human-readable name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenInteger:
		return "INTEGER"
	case TokenDecimal:
		return "DECIMAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenKeyword:
		return "KEYWORD"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "MULTIPLY"
	case TokenSlash:
		return "DIVIDE"
	case TokenEquals:
		return "EQUAL"
	case TokenSemicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether the token type is a binary operator
func (tt TokenType) IsOperator() bool {
	switch tt {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return true
	default:
		return false
	}
}

// IsNumber reports whether the token type is a numeric literal
func (tt TokenType) IsNumber() bool {
	return tt == TokenInteger || tt == TokenDecimal
}

// keywords is the fixed set of type names
var keywords = map[string]struct{}{
	"int":    {},
	"float":  {},
	"double": {},
}

// IsKeyword checks if a string is an MCL type keyword. Matching is case sensitive.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
