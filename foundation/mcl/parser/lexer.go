// File: lexer.go
// Title: MCL Lexical Analyzer (Tokenizer)
// Description: Converts MCL program text into tokens on demand. The scan
//              cursor only moves forward; once the input is exhausted every
//              call returns EOF.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial lexer implementation

package parser

import (
	"strings"
)

// Lexer performs lexical analysis of MCL input
type Lexer struct {
	input     string      // Input string
	position  int         // Scan cursor (offset of the current char)
	line      int         // Line of the current char (1-based)
	column    int         // Column of the current char (1-based)
	operators OperatorSet // Operators recognized as tokens
}

// NewLexer creates a new lexer for the given input. Operator characters
// outside ops are rejected like any other unknown character.
func NewLexer(input string, ops OperatorSet) *Lexer {
	return &Lexer{
		input:     input,
		line:      1,
		column:    1,
		operators: ops,
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	tok := Token{Offset: l.position, Line: l.line, Column: l.column}

	if l.atEnd() {
		tok.Type = TokenEOF
		return tok, nil
	}

	ch := l.input[l.position]
	switch {
	case isDigit(ch):
		tok.Lexeme = l.readNumber()
		tok.Type = TokenInteger
		if strings.IndexByte(tok.Lexeme, '.') >= 0 {
			tok.Type = TokenDecimal
		}
		return tok, nil

	case isLetter(ch) || ch == '_':
		tok.Lexeme = l.readIdentifier()
		tok.Type = TokenIdentifier
		if IsKeyword(tok.Lexeme) {
			tok.Type = TokenKeyword
		}
		return tok, nil

	case ch == '=':
		tok.Type = TokenEquals
	case ch == ';':
		tok.Type = TokenSemicolon
	default:
		tt, enabled := l.operators.operatorFor(ch)
		if !enabled {
			return Token{}, newLexicalError(l.input[l.position:], tok)
		}
		tok.Type = tt
	}

	tok.Lexeme = string(ch)
	l.readChar()
	return tok, nil
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// Position returns the scan cursor as a byte offset into the input
func (l *Lexer) Position() int {
	return l.position
}

// Operators returns the operator set the lexer recognizes
func (l *Lexer) Operators() OperatorSet {
	return l.operators
}

// atEnd reports whether the cursor is past the last character
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// readChar advances the cursor by one character
func (l *Lexer) readChar() {
	if l.atEnd() {
		return
	}

	if l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
}

// readIdentifier reads a maximal run of letters, digits and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEnd() && (isLetter(l.input[l.position]) || isDigit(l.input[l.position]) || l.input[l.position] == '_') {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of digits and dots. The number of dots is
// not checked: "1.2.3" is one literal.
func (l *Lexer) readNumber() string {
	start := l.position
	for !l.atEnd() && (isDigit(l.input[l.position]) || l.input[l.position] == '.') {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.input[l.position]) {
		l.readChar()
	}
}

// Utility functions

// isSpace matches the C isspace set
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

// isLetter checks if the character is an ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeInput is a convenience function that tokenizes input with the
// given operator set
func TokenizeInput(input string, ops OperatorSet) ([]Token, error) {
	return NewLexer(input, ops).Tokenize()
}
