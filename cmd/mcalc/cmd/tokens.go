package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mcalc/internal/render"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [datei]",
	Short: "Zeigt den Token-Strom eines Programms",
	Long: `Zerlegt ein MCL-Programm in Tokens, ohne es auszuwerten, und gibt
alle Tokens einschließlich EOF aus.

Bei einem unbekannten Zeichen werden die Tokens davor ausgegeben,
danach folgt die Fehlermeldung.

Beispiele:
  mcalc tokens programm.mcl
  mcalc tokens -f plain programm.mcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readProgram(cmd, args)
	if err != nil {
		return err
	}

	tokens, lexErr := newEngine(logger, false).Tokenize(cmd.Context(), source)
	if len(tokens) > 0 {
		if err := render.Tokens(cmd.OutOrStdout(), tokens, outputFormat()); err != nil {
			return err
		}
	}
	return lexErr
}
