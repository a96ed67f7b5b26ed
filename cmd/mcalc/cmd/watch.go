package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/internal/render"
	"github.com/msto63/mcalc/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <datei>",
	Short: "Wertet eine Datei bei jeder Änderung neu aus",
	Long: `Wertet ein MCL-Programm aus und wiederholt die Auswertung bei jeder
Änderung der Datei. Fehler werden angezeigt, ohne das Beobachten zu
beenden. Ctrl+C beendet.

Beispiele:
  mcalc watch programm.mcl
  mcalc watch --debounce 500ms -f plain programm.mcl`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Wartezeit nach der letzten Änderung")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]
	engine := newEngine(logger, appConfig.Output.ShowTokens)
	out := cmd.OutOrStdout()

	runs, err := openHistory(false)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	evaluate := func() {
		fmt.Fprintf(out, "\n── %s (%s) ──\n", path, time.Now().Format("15:04:05"))

		source, err := readProgramFile(path)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}

		result, err := engine.Evaluate(ctx, source)
		recordRun(ctx, runs, source, result, err)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}

		if err := render.Result(out, result, outputFormat(), appConfig.Output.ShowTokens); err != nil {
			printError(cmd.ErrOrStderr(), err)
		}
	}

	w, err := watcher.New(path, watcher.Options{Logger: logger, Debounce: watchDebounce})
	if err != nil {
		return err
	}

	evaluate()
	logger.Info("watching for changes", mclog.Fields{"file": w.Path()})

	return w.Run(ctx, func(string) { evaluate() })
}
