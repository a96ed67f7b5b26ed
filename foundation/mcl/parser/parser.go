// File: parser.go
// Title: MCL Recursive Descent Parser and Evaluator
// Description: Consumes tokens one at a time from a Lexer and evaluates each
//              statement directly into a symbol table. One token of
//              lookahead, no backtracking, no error recovery: the first
//              failure ends the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// Parser implements recursive descent parsing and evaluation for MCL
type Parser struct {
	lexer      *Lexer
	current    Token // Lookahead
	primed     bool  // Lookahead has been fetched
	symbols    *symtab.Table
	tokens     []Token // Consumed tokens, in consumption order
	statements int
	logger     *mclog.Logger
	options    Options
}

// Options configures parser behavior
type Options struct {
	Logger *mclog.Logger

	// Symbols is the table statements are evaluated into. A new table is
	// created when nil.
	Symbols *symtab.Table

	// RecordTokens keeps every consumed token for Tokens().
	RecordTokens bool
}

// New creates a parser reading from lexer. No token is read until
// ParseProgram is called.
func New(lexer *Lexer, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mclog.GetDefault()
	}
	if opts.Symbols == nil {
		opts.Symbols = symtab.New()
	}

	return &Parser{
		lexer:   lexer,
		symbols: opts.Symbols,
		logger:  opts.Logger.WithField("component", "mcl-parser"),
		options: opts,
	}
}

// ParseProgram parses and evaluates statements until EOF. It stops at the
// first error; the symbol table then holds the effects of the statements
// completed before it and must not be reported as a result.
func (p *Parser) ParseProgram() error {
	if !p.primed {
		if err := p.advance(); err != nil {
			return err
		}
		p.primed = true
	}

	for p.current.Type != TokenEOF {
		if err := p.parseStatement(); err != nil {
			return err
		}
		p.statements++
	}

	return nil
}

// Symbols returns the symbol table the parser evaluates into
func (p *Parser) Symbols() *symtab.Table {
	return p.symbols
}

// Tokens returns the consumed tokens in consumption order. It is empty
// unless Options.RecordTokens is set. EOF is never consumed.
func (p *Parser) Tokens() []Token {
	result := make([]Token, len(p.tokens))
	copy(result, p.tokens)
	return result
}

// Statements returns the number of statements evaluated so far
func (p *Parser) Statements() int {
	return p.statements
}

// advance replaces the lookahead with the next token
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// eat consumes the lookahead if it has the expected type
func (p *Parser) eat(expected TokenType) error {
	if p.current.Type != expected {
		return newExpectedError(expected, p.current)
	}

	if p.options.RecordTokens {
		p.tokens = append(p.tokens, p.current)
	}
	p.logger.Trace("token consumed", mclog.Fields{
		"token":  p.current.String(),
		"line":   p.current.Line,
		"column": p.current.Column,
	})

	return p.advance()
}

// parseStatement dispatches on the first token of a statement
func (p *Parser) parseStatement() error {
	switch p.current.Type {
	case TokenKeyword:
		return p.parseDeclaration()
	case TokenIdentifier:
		return p.parseAssignment()
	default:
		return newUnexpectedError("statement", p.current)
	}
}

// parseDeclaration parses KEYWORD IDENT '=' expression ';'
func (p *Parser) parseDeclaration() error {
	typeName := p.current.Lexeme
	if err := p.eat(TokenKeyword); err != nil {
		return err
	}

	name := p.current.Lexeme
	if err := p.eat(TokenIdentifier); err != nil {
		return err
	}

	if err := p.eat(TokenEquals); err != nil {
		return err
	}

	value, err := p.parseExpression()
	if err != nil {
		return err
	}

	if err := p.eat(TokenSemicolon); err != nil {
		return err
	}

	p.symbols.Declare(name, typeName, value)
	p.logger.Debug("variable declared", mclog.Fields{
		"name":  name,
		"type":  typeName,
		"value": value,
	})
	return nil
}

// parseAssignment parses IDENT '=' expression ';'
func (p *Parser) parseAssignment() error {
	target := p.current
	if err := p.eat(TokenIdentifier); err != nil {
		return err
	}

	if err := p.eat(TokenEquals); err != nil {
		return err
	}

	value, err := p.parseExpression()
	if err != nil {
		return err
	}

	if err := p.eat(TokenSemicolon); err != nil {
		return err
	}

	if !p.symbols.Assign(target.Lexeme, value) {
		return newUndeclaredError(target.Lexeme, target, "parser.assignment")
	}
	p.logger.Debug("variable assigned", mclog.Fields{
		"name":  target.Lexeme,
		"value": value,
	})
	return nil
}

// parseExpression parses term (op term)* with all operators at the same
// precedence, combined left to right
func (p *Parser) parseExpression() (int64, error) {
	result, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.current.Type.IsOperator() {
		op := p.current.Type
		if err := p.eat(op); err != nil {
			return 0, err
		}

		operand := p.current
		value, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		switch op {
		case TokenPlus:
			result += value
		case TokenMinus:
			result -= value
		case TokenStar:
			result *= value
		case TokenSlash:
			if value == 0 {
				return 0, newDivisionByZeroError(operand)
			}
			result /= value
		}
	}

	return result, nil
}

// parseTerm parses a numeric literal or a variable reference
func (p *Parser) parseTerm() (int64, error) {
	tok := p.current

	switch {
	case tok.Type.IsNumber():
		value, err := literalValue(tok)
		if err != nil {
			return 0, err
		}
		if err := p.eat(tok.Type); err != nil {
			return 0, err
		}
		return value, nil

	case tok.Type == TokenIdentifier:
		if err := p.eat(TokenIdentifier); err != nil {
			return 0, err
		}
		entry, ok := p.symbols.Lookup(tok.Lexeme)
		if !ok {
			return 0, newUndeclaredError(tok.Lexeme, tok, "parser.term")
		}
		return entry.Value, nil

	default:
		return 0, newUnexpectedError("term", tok)
	}
}

// literalValue converts the leading digit run of a numeric literal, so the
// fractional part of a decimal literal is dropped: "3.14" is 3.
func literalValue(tok Token) (int64, error) {
	end := 0
	for end < len(tok.Lexeme) && isDigit(tok.Lexeme[end]) {
		end++
	}

	value, err := strconv.ParseInt(tok.Lexeme[:end], 10, 64)
	if err != nil {
		return 0, newLiteralRangeError(tok, err)
	}
	return value, nil
}
