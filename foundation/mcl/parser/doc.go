// File: doc.go
// Title: MCL Parser Package Documentation
// Description: Tokenizer and evaluating recursive descent parser for the
//              mcalc statement language (MCL).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial lexer and parser implementation

/*
Package parser provides lexical analysis and evaluation for MCL programs.

MCL is a tiny statement language of typed declarations and assignments:

	program     := statement* EOF
	statement   := declaration | assignment
	declaration := KEYWORD IDENT '=' expression ';'
	assignment  := IDENT '=' expression ';'
	expression  := term (('+'|'-'|'*'|'/') term)*
	term        := INT | DECIMAL | IDENT
	KEYWORD     := "int" | "float" | "double"

The package contains:

  • Lexer: an on-demand tokenizer with a single forward-only cursor
  • Parser: a one-token-lookahead recursive descent parser that evaluates
    each statement directly into a symbol table
  • OperatorSet: the enabled binary operators; the additive set accepts
    only '+', the arithmetic set accepts all four

All four operators share one precedence level and associate to the left, so
"1 + 2 * 3" evaluates to 9. Numeric literals are converted by reading their
leading digit run, so the decimal literal "3.14" evaluates to 3. Both rules
are part of the language and are kept deliberately.

Every failure is returned as a *mcerror.Error carrying one of the MCL codes
(lexical, syntax, undeclared variable, division by zero, literal range).
Parsing stops at the first failure; there is no recovery.
*/
package parser
