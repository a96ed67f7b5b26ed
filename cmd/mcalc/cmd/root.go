package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/pkg/core/config"
	"github.com/msto63/mcalc/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	operators string
	format    string

	appConfig *config.Config
	logger    *mclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "mcalc - Auswertung von MCL-Programmen",
	Long: `mcalc wertet Programme der Anweisungssprache MCL aus.

Ein Programm besteht aus typisierten Deklarationen und Zuweisungen:

  int a = 10;
  int b = a + 5;
  b = b * 2;

Alle Operatoren haben dieselbe Priorität und werden von links nach
rechts ausgewertet (1 + 2 * 3 ergibt 9). Werte sind ganze Zahlen,
Dezimalliterale werden abgeschnitten.

Befehle:
  run      - Programm auswerten
  tokens   - Token-Strom anzeigen
  repl     - Interaktive Eingabe
  watch    - Datei bei Änderungen neu auswerten
  history  - Aufgezeichnete Läufe verwalten`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
}

// Execute runs the root command with an interrupt-aware context
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $MCALC_CONFIG oder ./mcalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log-Level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&operators, "operators", "o", "", "Operatoren (additive, arithmetic oder z.B. \"+-\")")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Ausgabeformat (table, plain, json, yaml)")
}

// initApp loads the configuration and applies flag overrides
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if operators != "" {
		cfg.Language.Operators = operators
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logLevel
	if verbose && level == "" {
		level = "debug"
	}

	appConfig = cfg
	logger = logging.FromConfig("mcalc", cfg, level).WithOutput(cmd.ErrOrStderr())
	mclog.SetDefault(logger)

	logger.Debug("configuration loaded", mclog.Fields{
		"operators": cfg.Language.Operators,
		"format":    cfg.Output.Format,
		"history":   cfg.History.Enabled,
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
