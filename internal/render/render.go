// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     render
// Description: Output of variables and token logs as table, plain text,
//              JSON or YAML
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/foundation/mcl/parser"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// Format selects the output representation
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatPlain, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// TokenView is the serialized form of a consumed token
type TokenView struct {
	Type   string `json:"type" yaml:"type"`
	Lexeme string `json:"lexeme" yaml:"lexeme"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// resultView is the serialized form of a whole run
type resultView struct {
	Variables  []symtab.Entry `json:"variables" yaml:"variables"`
	Tokens     []TokenView    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Statements int            `json:"statements" yaml:"statements"`
}

// Table styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Result writes the variables of a run, followed by its token log when
// showTokens is set. Structured formats emit one document.
func Result(w io.Writer, result *mcl.Result, format Format, showTokens bool) error {
	switch format {
	case FormatJSON, FormatYAML:
		view := resultView{
			Variables:  nonNilEntries(result.Variables),
			Statements: result.Statements,
		}
		if showTokens {
			view.Tokens = tokenViews(result.Tokens)
		}
		return encode(w, view, format)
	}

	if err := Variables(w, result.Variables, format); err != nil {
		return err
	}
	if !showTokens {
		return nil
	}
	return Tokens(w, result.Tokens, format)
}

// Variables writes symbol table entries in the given format
func Variables(w io.Writer, entries []symtab.Entry, format Format) error {
	switch format {
	case FormatPlain:
		var sb strings.Builder
		sb.WriteString("\nVariable Values:\n")
		sb.WriteString("----------------\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s (%s) = %d\n", e.Name, e.Type, e.Value)
		}
		_, err := io.WriteString(w, sb.String())
		return err

	case FormatJSON, FormatYAML:
		return encode(w, nonNilEntries(entries), format)

	case FormatTable, "":
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Name, e.Type, strconv.FormatInt(e.Value, 10)})
		}
		return writeTable(w, []string{"Name", "Typ", "Wert"}, rows, 2)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Tokens writes a token list in the given format
func Tokens(w io.Writer, tokens []parser.Token, format Format) error {
	switch format {
	case FormatPlain:
		var sb strings.Builder
		sb.WriteString("\nTokens:\n")
		sb.WriteString("-------------------------------------\n")
		sb.WriteString("|  Type      |  Name      |  Value   |\n")
		sb.WriteString("-------------------------------------\n")
		for _, tok := range tokens {
			fmt.Fprintf(&sb, "|  %d  |  %s  |  %s  |\n", int(tok.Type), tok.Type, tok.Lexeme)
		}
		sb.WriteString("-------------------------------------\n")
		_, err := io.WriteString(w, sb.String())
		return err

	case FormatJSON, FormatYAML:
		return encode(w, tokenViews(tokens), format)

	case FormatTable, "":
		rows := make([][]string, 0, len(tokens))
		for _, tok := range tokens {
			rows = append(rows, []string{
				tok.Type.String(),
				tok.Lexeme,
				fmt.Sprintf("%d:%d", tok.Line, tok.Column),
			})
		}
		return writeTable(w, []string{"Token", "Lexem", "Position"}, rows, 1)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeTable renders rows with a styled header; column highlight gets the
// value color
func writeTable(w io.Writer, headers []string, rows [][]string, highlight int) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == highlight:
				return valueStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func encode(w io.Writer, v interface{}, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func tokenViews(tokens []parser.Token) []TokenView {
	views := make([]TokenView, 0, len(tokens))
	for _, tok := range tokens {
		views = append(views, TokenView{
			Type:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}
	return views
}

// nonNilEntries makes an empty program encode as [] rather than null
func nonNilEntries(entries []symtab.Entry) []symtab.Entry {
	if entries == nil {
		return []symtab.Entry{}
	}
	return entries
}
