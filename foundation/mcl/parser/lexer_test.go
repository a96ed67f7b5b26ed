// File: lexer_test.go
// Title: MCL Lexer Unit Tests
// Description: Tests tokenization of all MCL syntax elements, position
//              tracking, operator sets and lexical errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package parser

import (
	"testing"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Declaration",
			input: "int x = 1 + 2;",
			expected: []Token{
				{Type: TokenKeyword, Lexeme: "int", Offset: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Lexeme: "x", Offset: 4, Line: 1, Column: 5},
				{Type: TokenEquals, Lexeme: "=", Offset: 6, Line: 1, Column: 7},
				{Type: TokenInteger, Lexeme: "1", Offset: 8, Line: 1, Column: 9},
				{Type: TokenPlus, Lexeme: "+", Offset: 10, Line: 1, Column: 11},
				{Type: TokenInteger, Lexeme: "2", Offset: 12, Line: 1, Column: 13},
				{Type: TokenSemicolon, Lexeme: ";", Offset: 13, Line: 1, Column: 14},
				{Type: TokenEOF, Lexeme: "", Offset: 14, Line: 1, Column: 15},
			},
		},
		{
			name:  "All operators without spaces",
			input: "a=b-c*d/e;",
			expected: []Token{
				{Type: TokenIdentifier, Lexeme: "a", Offset: 0, Line: 1, Column: 1},
				{Type: TokenEquals, Lexeme: "=", Offset: 1, Line: 1, Column: 2},
				{Type: TokenIdentifier, Lexeme: "b", Offset: 2, Line: 1, Column: 3},
				{Type: TokenMinus, Lexeme: "-", Offset: 3, Line: 1, Column: 4},
				{Type: TokenIdentifier, Lexeme: "c", Offset: 4, Line: 1, Column: 5},
				{Type: TokenStar, Lexeme: "*", Offset: 5, Line: 1, Column: 6},
				{Type: TokenIdentifier, Lexeme: "d", Offset: 6, Line: 1, Column: 7},
				{Type: TokenSlash, Lexeme: "/", Offset: 7, Line: 1, Column: 8},
				{Type: TokenIdentifier, Lexeme: "e", Offset: 8, Line: 1, Column: 9},
				{Type: TokenSemicolon, Lexeme: ";", Offset: 9, Line: 1, Column: 10},
				{Type: TokenEOF, Lexeme: "", Offset: 10, Line: 1, Column: 11},
			},
		},
		{
			name:  "Multiple lines",
			input: "double d = 3.14;\n  d = d;\n",
			expected: []Token{
				{Type: TokenKeyword, Lexeme: "double", Offset: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Lexeme: "d", Offset: 7, Line: 1, Column: 8},
				{Type: TokenEquals, Lexeme: "=", Offset: 9, Line: 1, Column: 10},
				{Type: TokenDecimal, Lexeme: "3.14", Offset: 11, Line: 1, Column: 12},
				{Type: TokenSemicolon, Lexeme: ";", Offset: 15, Line: 1, Column: 16},
				{Type: TokenIdentifier, Lexeme: "d", Offset: 19, Line: 2, Column: 3},
				{Type: TokenEquals, Lexeme: "=", Offset: 21, Line: 2, Column: 5},
				{Type: TokenIdentifier, Lexeme: "d", Offset: 23, Line: 2, Column: 7},
				{Type: TokenSemicolon, Lexeme: ";", Offset: 24, Line: 2, Column: 8},
				{Type: TokenEOF, Lexeme: "", Offset: 26, Line: 3, Column: 1},
			},
		},
		{
			name:  "Identifiers with digits and underscores",
			input: "_tmp1 x_2 intx Int",
			expected: []Token{
				{Type: TokenIdentifier, Lexeme: "_tmp1", Offset: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Lexeme: "x_2", Offset: 6, Line: 1, Column: 7},
				{Type: TokenIdentifier, Lexeme: "intx", Offset: 10, Line: 1, Column: 11},
				{Type: TokenIdentifier, Lexeme: "Int", Offset: 15, Line: 1, Column: 16},
				{Type: TokenEOF, Lexeme: "", Offset: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "Number followed by letters splits",
			input: "12abc",
			expected: []Token{
				{Type: TokenInteger, Lexeme: "12", Offset: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Lexeme: "abc", Offset: 2, Line: 1, Column: 3},
				{Type: TokenEOF, Lexeme: "", Offset: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Whitespace variants",
			input: "\t\v\f\r\n float",
			expected: []Token{
				{Type: TokenKeyword, Lexeme: "float", Offset: 6, Line: 2, Column: 2},
				{Type: TokenEOF, Lexeme: "", Offset: 11, Line: 2, Column: 7},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Lexeme: "", Offset: 0, Line: 1, Column: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, ArithmeticOperators)

			for i, expected := range tt.expected {
				tok, err := lexer.NextToken()
				if err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}
				if tok != expected {
					t.Errorf("token %d: got %+v, want %+v", i, tok, expected)
				}
			}
		})
	}
}

func TestLexer_NumberLiterals(t *testing.T) {
	tests := []struct {
		input    string
		wantType TokenType
	}{
		{"42", TokenInteger},
		{"007", TokenInteger},
		{"3.14", TokenDecimal},
		{"7.", TokenDecimal},
		{"1.2.3", TokenDecimal},
		{"0..5", TokenDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input, ArithmeticOperators)
			if err != nil {
				t.Fatalf("TokenizeInput() error = %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("got %d tokens, want literal + EOF: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.wantType {
				t.Errorf("type = %v, want %v", tokens[0].Type, tt.wantType)
			}
			if tokens[0].Lexeme != tt.input {
				t.Errorf("lexeme = %q, want %q", tokens[0].Lexeme, tt.input)
			}
		})
	}
}

func TestLexer_EOFIsIdempotent(t *testing.T) {
	lexer := NewLexer("x", ArithmeticOperators)

	if tok, err := lexer.NextToken(); err != nil || tok.Type != TokenIdentifier {
		t.Fatalf("first token = %v, %v", tok, err)
	}

	for i := 0; i < 5; i++ {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("call %d after exhaustion: error %v", i, err)
		}
		if tok.Type != TokenEOF {
			t.Fatalf("call %d after exhaustion: got %v, want EOF", i, tok)
		}
	}
}

func TestLexer_CursorNeverMovesBack(t *testing.T) {
	lexer := NewLexer("int a = 10;\nint b = a + 5;\nb = b * 2;\n", ArithmeticOperators)

	last := lexer.Position()
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lexer.Position() < last {
			t.Fatalf("cursor moved back from %d to %d", last, lexer.Position())
		}
		last = lexer.Position()
		if tok.Type == TokenEOF {
			break
		}
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ops      OperatorSet
		char     string
		line     int
		column   int
		tokensOK int
	}{
		{"unknown punctuation", "int x = 1 $ 2;", ArithmeticOperators, "$", 1, 11, 4},
		{"parenthesis", "x = (1);", ArithmeticOperators, "(", 1, 5, 2},
		{"non-ascii letter", "int ü = 1;", ArithmeticOperators, "ü", 1, 5, 1},
		{"minus in additive dialect", "int x = 5 - 1;", AdditiveOperators, "-", 1, 11, 4},
		{"star in additive dialect", "x\n*", AdditiveOperators, "*", 2, 1, 1},
		{"slash in additive dialect", "/", AdditiveOperators, "/", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input, tt.ops)
			if err == nil {
				t.Fatal("expected lexical error")
			}
			if !IsLexicalError(err) {
				t.Fatalf("error code = %v, want %v", mcerror.GetCode(err), mcerror.CodeLexical)
			}
			if len(tokens) != tt.tokensOK {
				t.Errorf("got %d tokens before the error, want %d", len(tokens), tt.tokensOK)
			}

			mcErr, _ := mcerror.As(err)
			if v, _ := mcErr.Detail("character"); v != tt.char {
				t.Errorf("character = %v, want %q", v, tt.char)
			}
			if v, _ := mcErr.Detail("line"); v != tt.line {
				t.Errorf("line = %v, want %d", v, tt.line)
			}
			if v, _ := mcErr.Detail("column"); v != tt.column {
				t.Errorf("column = %v, want %d", v, tt.column)
			}
		})
	}
}

func TestLexer_ErrorDoesNotAdvance(t *testing.T) {
	lexer := NewLexer("  #", ArithmeticOperators)

	_, err1 := lexer.NextToken()
	pos := lexer.Position()
	_, err2 := lexer.NextToken()

	if err1 == nil || err2 == nil {
		t.Fatal("expected the same lexical error twice")
	}
	if lexer.Position() != pos {
		t.Errorf("cursor moved from %d to %d after an error", pos, lexer.Position())
	}
}

func TestTokenType_String(t *testing.T) {
	tests := map[TokenType]string{
		TokenEOF:        "EOF",
		TokenInteger:    "INTEGER",
		TokenDecimal:    "DECIMAL",
		TokenIdentifier: "IDENTIFIER",
		TokenKeyword:    "KEYWORD",
		TokenPlus:       "PLUS",
		TokenMinus:      "MINUS",
		TokenStar:       "MULTIPLY",
		TokenSlash:      "DIVIDE",
		TokenEquals:     "EQUAL",
		TokenSemicolon:  "SEMICOLON",
		TokenType(99):   "UNKNOWN",
	}

	for tt, want := range tests {
		if got := tt.String(); got != want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tt), got, want)
		}
	}

	if got := (Token{Type: TokenKeyword, Lexeme: "int"}).String(); got != "KEYWORD(int)" {
		t.Errorf("Token.String() = %q", got)
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"int", "float", "double"} {
		if !IsKeyword(kw) {
			t.Errorf("IsKeyword(%q) = false", kw)
		}
	}
	for _, s := range []string{"INT", "char", "long", ""} {
		if IsKeyword(s) {
			t.Errorf("IsKeyword(%q) = true", s)
		}
	}
}

func TestParseOperatorSet(t *testing.T) {
	tests := []struct {
		input   string
		want    OperatorSet
		wantErr bool
	}{
		{"additive", AdditiveOperators, false},
		{"ADD", AdditiveOperators, false},
		{"arithmetic", ArithmeticOperators, false},
		{"full", ArithmeticOperators, false},
		{"", ArithmeticOperators, false},
		{"+-", OpAdd | OpSubtract, false},
		{"+ *", OpAdd | OpMultiply, false},
		{"+%", 0, true},
		{"   ", ArithmeticOperators, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperatorSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperatorSet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOperatorSet(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if ArithmeticOperators.String() != "+-*/" || AdditiveOperators.Name() != "additive" {
		t.Error("operator set naming is off")
	}
}
