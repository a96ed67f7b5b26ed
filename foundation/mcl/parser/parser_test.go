// File: parser_test.go
// Title: MCL Parser Unit Tests
// Description: Tests statement evaluation, flat operator precedence,
//              literal truncation, the token log and every error class.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package parser

import (
	"math"
	"strconv"
	"testing"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

func evaluate(t *testing.T, input string, ops OperatorSet) (*Parser, error) {
	t.Helper()
	p := New(NewLexer(input, ops), Options{Logger: mclog.NewNop(), RecordTokens: true})
	return p, p.ParseProgram()
}

func TestParser_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ops      OperatorSet
		expected []symtab.Entry
	}{
		{
			name:  "Declarations and assignment",
			input: "int a = 10; int b = a + 5; b = b * 2;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "a", Type: "int", Value: 10},
				{Name: "b", Type: "int", Value: 30},
			},
		},
		{
			name:  "Flat precedence left to right",
			input: "int x = 1 + 2 * 3; int y = 10 - 4 / 2; int z = 2 * 3 + 4 * 5;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "x", Type: "int", Value: 9},
				{Name: "y", Type: "int", Value: 3},
				{Name: "z", Type: "int", Value: 50},
			},
		},
		{
			name:  "Integer division truncates toward zero",
			input: "int q = 7 / 2; int r = 0 - 7 / 2;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "q", Type: "int", Value: 3},
				{Name: "r", Type: "int", Value: -3},
			},
		},
		{
			name:  "Decimal literal truncated",
			input: "double d = 3.14; float f = 2.99 + 0.5; int n = 1.2.3;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "d", Type: "double", Value: 3},
				{Name: "f", Type: "float", Value: 2},
				{Name: "n", Type: "int", Value: 1},
			},
		},
		{
			name:  "Redeclaration replaces type and value",
			input: "int v = 1; double v = 2;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "v", Type: "double", Value: 2},
			},
		},
		{
			name:  "Assignment keeps declared type",
			input: "float v = 1; v = 41 + 1;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "v", Type: "float", Value: 42},
			},
		},
		{
			name:  "Self reference uses current value",
			input: "int c = 1; c = c + c; c = c + c; int d = c;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "c", Type: "int", Value: 4},
				{Name: "d", Type: "int", Value: 4},
			},
		},
		{
			name:  "Additive dialect",
			input: "int a = 1 + 2 + 3;\nint b = a + a;\n",
			ops:   AdditiveOperators,
			expected: []symtab.Entry{
				{Name: "a", Type: "int", Value: 6},
				{Name: "b", Type: "int", Value: 12},
			},
		},
		{
			name:     "Empty program",
			input:    " \n\t ",
			ops:      ArithmeticOperators,
			expected: []symtab.Entry{},
		},
		{
			name:  "Division by a non-zero variable",
			input: "int a = 3; int b = 12 / a;",
			ops:   ArithmeticOperators,
			expected: []symtab.Entry{
				{Name: "a", Type: "int", Value: 3},
				{Name: "b", Type: "int", Value: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := evaluate(t, tt.input, tt.ops)
			if err != nil {
				t.Fatalf("ParseProgram() error = %v", err)
			}

			got := p.Symbols().Entries()
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d variables %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("variable %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParser_TokenLog(t *testing.T) {
	p, err := evaluate(t, "int x = 1 + 2;", ArithmeticOperators)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenKeyword, "int"},
		{TokenIdentifier, "x"},
		{TokenEquals, "="},
		{TokenInteger, "1"},
		{TokenPlus, "+"},
		{TokenInteger, "2"},
		{TokenSemicolon, ";"},
	}

	tokens := p.Tokens()
	if len(tokens) != len(expected) {
		t.Fatalf("logged %d tokens %v, want %d", len(tokens), tokens, len(expected))
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ || tokens[i].Lexeme != want.lexeme {
			t.Errorf("token %d = %v, want %s(%s)", i, tokens[i], want.typ, want.lexeme)
		}
	}
	if p.Statements() != 1 {
		t.Errorf("Statements() = %d, want 1", p.Statements())
	}
}

func TestParser_TokenLogDisabled(t *testing.T) {
	p := New(NewLexer("int x = 1;", ArithmeticOperators), Options{Logger: mclog.NewNop()})
	if err := p.ParseProgram(); err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if len(p.Tokens()) != 0 {
		t.Errorf("Tokens() = %v, want none without RecordTokens", p.Tokens())
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ops     OperatorSet
		code    mcerror.Code
		details map[string]interface{}
	}{
		{
			name:    "Division by zero literal",
			input:   "int x = 5 / 0;",
			code:    mcerror.CodeDivisionByZero,
			details: map[string]interface{}{"line": 1, "column": 13},
		},
		{
			name:  "Division by zero variable",
			input: "int z = 0; int x = 5 / z;",
			code:  mcerror.CodeDivisionByZero,
		},
		{
			name:  "Division by truncated decimal",
			input: "int x = 5 / 0.5;",
			code:  mcerror.CodeDivisionByZero,
		},
		{
			name:    "Assignment to undeclared",
			input:   "y = 3;",
			code:    mcerror.CodeUndeclaredVariable,
			details: map[string]interface{}{"name": "y", "line": 1, "column": 1},
		},
		{
			name:    "Undeclared in expression",
			input:   "int a = b + 1;",
			code:    mcerror.CodeUndeclaredVariable,
			details: map[string]interface{}{"name": "b"},
		},
		{
			name:    "Expression error wins over undeclared target",
			input:   "y = z;",
			code:    mcerror.CodeUndeclaredVariable,
			details: map[string]interface{}{"name": "z"},
		},
		{
			name:    "Missing semicolon",
			input:   "int a = 1",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"expected": "SEMICOLON", "actual": "EOF"},
		},
		{
			name:    "Missing equals",
			input:   "int a 1;",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"expected": "EQUAL", "actual": "INTEGER"},
		},
		{
			name:    "Keyword as variable name",
			input:   "int float = 1;",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"expected": "IDENTIFIER", "actual": "KEYWORD"},
		},
		{
			name:    "Statement starting with a number",
			input:   "1 = 2;",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"actual": "INTEGER"},
		},
		{
			name:    "Statement starting with semicolon",
			input:   "int a = 1;;",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"actual": "SEMICOLON"},
		},
		{
			name:    "Dangling operator",
			input:   "int a = 1 + ;",
			code:    mcerror.CodeSyntax,
			details: map[string]interface{}{"actual": "SEMICOLON"},
		},
		{
			name:  "Missing expression",
			input: "int a = ;",
			code:  mcerror.CodeSyntax,
		},
		{
			name:  "Lexical error mid program",
			input: "int a = 1;\nint b = a % 2;",
			code:  mcerror.CodeLexical,
		},
		{
			name:  "Lexical error on first token",
			input: "@",
			code:  mcerror.CodeLexical,
		},
		{
			name:  "Minus rejected in additive dialect",
			input: "int a = 3 - 1;",
			ops:   AdditiveOperators,
			code:  mcerror.CodeLexical,
		},
		{
			name:    "Literal out of range",
			input:   "int big = 99999999999999999999;",
			code:    mcerror.CodeLiteralRange,
			details: map[string]interface{}{"literal": "99999999999999999999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := tt.ops
			if ops == 0 {
				ops = ArithmeticOperators
			}

			_, err := evaluate(t, tt.input, ops)
			if err == nil {
				t.Fatal("ParseProgram() expected error")
			}

			mcErr, ok := mcerror.As(err)
			if !ok {
				t.Fatalf("error %v is not a coded error", err)
			}
			if mcErr.Code() != tt.code {
				t.Fatalf("code = %v, want %v (%v)", mcErr.Code(), tt.code, err)
			}
			for key, want := range tt.details {
				if got, _ := mcErr.Detail(key); got != want {
					t.Errorf("detail %s = %v, want %v", key, got, want)
				}
			}
		})
	}
}

func TestParser_ErrorPredicates(t *testing.T) {
	_, err := evaluate(t, "int x = 5 / 0;", ArithmeticOperators)
	if !IsDivisionByZeroError(err) || IsSyntaxError(err) {
		t.Errorf("predicates disagree for %v", err)
	}

	_, err = evaluate(t, "y = 3;", ArithmeticOperators)
	if !IsUndeclaredVariableError(err) || IsLexicalError(err) {
		t.Errorf("predicates disagree for %v", err)
	}

	_, err = evaluate(t, "int;", ArithmeticOperators)
	if !IsSyntaxError(err) {
		t.Errorf("IsSyntaxError(%v) = false", err)
	}
}

func TestParser_EvaluatesIntoGivenTable(t *testing.T) {
	table := symtab.New()
	table.Declare("seed", "int", 7)

	p := New(NewLexer("seed = seed * 6;", ArithmeticOperators), Options{
		Logger:  mclog.NewNop(),
		Symbols: table,
	})
	if err := p.ParseProgram(); err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}

	if got, _ := table.Lookup("seed"); got.Value != 42 {
		t.Errorf("seed = %d, want 42", got.Value)
	}
	if p.Symbols() != table {
		t.Error("Symbols() should return the table passed in Options")
	}
}

func TestParser_OverflowWraps(t *testing.T) {
	input := "int m = " + strconv.FormatInt(math.MaxInt64, 10) + " + 1;"
	p, err := evaluate(t, input, ArithmeticOperators)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if got, _ := p.Symbols().Lookup("m"); got.Value != math.MinInt64 {
		t.Errorf("m = %d, want %d", got.Value, int64(math.MinInt64))
	}

	input += " int n = 0 - 1; int q = m / n;"
	p, err = evaluate(t, input, ArithmeticOperators)
	if err != nil {
		t.Fatalf("ParseProgram() error = %v", err)
	}
	if got, _ := p.Symbols().Lookup("q"); got.Value != math.MinInt64 {
		t.Errorf("q = %d, want %d", got.Value, int64(math.MinInt64))
	}
}

func TestLiteralValue(t *testing.T) {
	tests := []struct {
		lexeme  string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"007", 7, false},
		{"3.14", 3, false},
		{"7.", 7, false},
		{"1.2.3", 1, false},
		{"9223372036854775807", math.MaxInt64, false},
		{"9223372036854775808", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			got, err := literalValue(Token{Type: TokenDecimal, Lexeme: tt.lexeme})
			if (err != nil) != tt.wantErr {
				t.Fatalf("literalValue(%q) error = %v, wantErr %v", tt.lexeme, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("literalValue(%q) = %d, want %d", tt.lexeme, got, tt.want)
			}
		})
	}
}
