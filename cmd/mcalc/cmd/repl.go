// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive MCL REPL
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/internal/tui/repl"
)

var replRecord bool

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell", "i"},
	Short:   "Startet die interaktive MCL-Eingabe",
	Long: `Startet eine interaktive Sitzung, in der MCL-Anweisungen Zeile für
Zeile ausgewertet werden. Variablen bleiben zwischen den Eingaben
erhalten. Eine fehlerhafte Eingabe ändert keine Variable.

Befehle:
  :vars       Alle Variablen anzeigen
  :reset      Alle Variablen löschen
  :help       Hilfe anzeigen
  :quit       Beenden

Tastenkuerzel:
  Enter       Eingabe auswerten
  ↑/↓         Eingabehistorie
  PgUp/PgDn   Scrollen
  Ctrl+C      Beenden`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replRecord, "record", false, "Eingaben in der Historie speichern")
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	runs, err := openHistory(replRecord)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	// Engine logs stay off the terminal while the TUI draws.
	return repl.Run(ctx, repl.Config{
		Engine: newEngine(logger.WithOutput(io.Discard), false),
		OnRun: func(source string, result *mcl.Result, err error) {
			recordRun(ctx, runs, source, result, err)
		},
	})
}
