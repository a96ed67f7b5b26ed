package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mcalc/internal/render"
)

var (
	runShowTokens bool
	runRecord     bool
)

var runCmd = &cobra.Command{
	Use:   "run [datei]",
	Short: "Wertet ein MCL-Programm aus",
	Long: `Liest ein MCL-Programm aus einer Datei oder von stdin, wertet es aus
und gibt alle Variablen mit Typ und Wert aus.

Bei einem Fehler wird nichts ausgegeben außer einer einzelnen
Fehlermeldung auf stderr, der Exit-Code ist dann 1.

Beispiele:
  mcalc run programm.mcl
  mcalc run --tokens programm.mcl
  mcalc run -f json programm.mcl
  mcalc run -o additive programm.mcl
  echo "int a = 1 + 2;" | mcalc run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runShowTokens, "tokens", "t", false, "Verbrauchte Tokens zusätzlich ausgeben")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "Lauf in der Historie speichern")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	source, err := readProgram(cmd, args)
	if err != nil {
		return err
	}

	runs, err := openHistory(runRecord)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	showTokens := runShowTokens || appConfig.Output.ShowTokens
	result, err := newEngine(logger, showTokens).Evaluate(ctx, source)
	recordRun(ctx, runs, source, result, err)
	if err != nil {
		logger.LogError(err)
		return err
	}

	return render.Result(cmd.OutOrStdout(), result, outputFormat(), showTokens)
}
