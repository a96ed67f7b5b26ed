// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     render
// Description: Output of recorded history runs
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/mcalc/internal/history/store"
)

const sourcePreviewLen = 40

// Runs writes a run list, one row per run
func Runs(w io.Writer, runs []*store.Run, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		if runs == nil {
			runs = []*store.Run{}
		}
		return encode(w, runs, format)

	case FormatPlain:
		var sb strings.Builder
		for _, r := range runs {
			fmt.Fprintf(&sb, "%s  %s  %-5s  %s\n",
				r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Status, runSummary(r))
		}
		_, err := io.WriteString(w, sb.String())
		return err

	case FormatTable, "":
		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			rows = append(rows, []string{
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(r.Status),
				runSummary(r),
			})
		}
		return writeTable(w, []string{"ID", "Zeitpunkt", "Status", "Programm"}, rows, 2)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Run writes one run with its source and outcome
func Run(w io.Writer, run *store.Run, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return encode(w, run, format)
	case FormatTable, FormatPlain, "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:          %s\n", run.ID)
	fmt.Fprintf(&sb, "Zeitpunkt:   %s\n", run.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Operatoren:  %s\n", run.Operators)
	fmt.Fprintf(&sb, "Status:      %s\n", run.Status)
	if run.Status == store.RunStatusError {
		fmt.Fprintf(&sb, "Fehler:      %s (%s)\n", run.ErrorMessage, run.ErrorCode)
	} else {
		fmt.Fprintf(&sb, "Anweisungen: %d in %s\n", run.Statements, run.Duration)
	}
	sb.WriteString("\nProgramm:\n")
	sb.WriteString(run.Source)
	if !strings.HasSuffix(run.Source, "\n") {
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	if run.Status == store.RunStatusError {
		return nil
	}
	return Variables(w, run.Variables, format)
}

// runSummary is the first source line, shortened for list output
func runSummary(r *store.Run) string {
	line := strings.TrimSpace(r.Source)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i]) + " …"
	}
	if len([]rune(line)) > sourcePreviewLen {
		line = string([]rune(line)[:sourcePreviewLen-1]) + "…"
	}
	return line
}
