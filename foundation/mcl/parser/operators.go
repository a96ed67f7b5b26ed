// File: operators.go
// Title: Enabled Operator Sets
// Description: The set of binary operators a lexer accepts. The additive
//              set reproduces the two-operator dialect, the arithmetic set
//              the four-operator dialect.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package parser

import (
	"fmt"
	"strings"
)

// OperatorSet is a bit set of enabled binary operators
type OperatorSet uint8

const (
	OpAdd OperatorSet = 1 << iota
	OpSubtract
	OpMultiply
	OpDivide
)

const (
	// AdditiveOperators enables only '+'
	AdditiveOperators = OpAdd

	// ArithmeticOperators enables '+', '-', '*' and '/'
	ArithmeticOperators = OpAdd | OpSubtract | OpMultiply | OpDivide
)

// operatorChars maps operator characters to their set bit and token type
var operatorChars = []struct {
	ch    byte
	op    OperatorSet
	token TokenType
}{
	{'+', OpAdd, TokenPlus},
	{'-', OpSubtract, TokenMinus},
	{'*', OpMultiply, TokenStar},
	{'/', OpDivide, TokenSlash},
}

// operatorFor returns the token type for ch if ch is an operator character in s
func (s OperatorSet) operatorFor(ch byte) (TokenType, bool) {
	for _, oc := range operatorChars {
		if oc.ch == ch {
			return oc.token, s&oc.op != 0
		}
	}
	return TokenEOF, false
}

// Has reports whether the operator bit is enabled
func (s OperatorSet) Has(op OperatorSet) bool {
	return s&op == op
}

// String returns the enabled operator characters, e.g. "+-*/"
func (s OperatorSet) String() string {
	var b strings.Builder
	for _, oc := range operatorChars {
		if s&oc.op != 0 {
			b.WriteByte(oc.ch)
		}
	}
	return b.String()
}

// Name returns the configuration name of the set
func (s OperatorSet) Name() string {
	switch s {
	case AdditiveOperators:
		return "additive"
	case ArithmeticOperators:
		return "arithmetic"
	default:
		return s.String()
	}
}

// ParseOperatorSet parses a set name ("additive", "add", "arithmetic",
// "full") or a string of operator characters such as "+-".
func ParseOperatorSet(name string) (OperatorSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add", "additive":
		return AdditiveOperators, nil
	case "", "full", "arithmetic":
		return ArithmeticOperators, nil
	}

	var set OperatorSet
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			continue
		}
		found := false
		for _, oc := range operatorChars {
			if oc.ch == name[i] {
				set |= oc.op
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("invalid operator set %q: unknown operator %q", name, name[i])
		}
	}
	if set == 0 {
		return 0, fmt.Errorf("invalid operator set %q: no operators", name)
	}
	return set, nil
}
