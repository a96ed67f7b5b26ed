package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/internal/history/store"
	"github.com/msto63/mcalc/internal/render"
)

var (
	historyLimit     int
	historyStatus    string
	historySince     time.Duration
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Aufgezeichnete Läufe verwalten",
	Long: `Zeigt und verwaltet die Historie der ausgewerteten Programme.

Läufe werden aufgezeichnet, wenn in der Konfiguration
[history] enabled = true gesetzt ist oder run/repl mit --record
aufgerufen werden.

Beispiele:
  mcalc history list
  mcalc history list --status error --limit 5
  mcalc history show <id>
  mcalc history prune --older-than 168h`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet aufgezeichnete Läufe, neueste zuerst",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt Programm und Ergebnis eines Laufs",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Löscht alte Läufe",
	Long: `Löscht alle Läufe, die älter als die angegebene Dauer sind.
Ohne --older-than gilt history.retention aus der Konfiguration.`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximale Anzahl (0 = alle)")
	historyListCmd.Flags().StringVar(&historyStatus, "status", "", "Nur Läufe mit Status (ok, error)")
	historyListCmd.Flags().DurationVar(&historySince, "since", 0, "Nur Läufe der letzten Dauer, z.B. 24h")

	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 0, "Mindestalter der zu löschenden Läufe")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	filter := store.RunFilter{Limit: historyLimit}

	switch store.RunStatus(historyStatus) {
	case "":
	case store.RunStatusOK, store.RunStatusError:
		filter.Status = store.RunStatus(historyStatus)
	default:
		return mcerror.Newf("unbekannter Status %q (erlaubt: ok, error)", historyStatus).
			WithCode(mcerror.CodeInvalidInput)
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	runs, err := openHistory(true)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	list, err := runs.List(cmd.Context(), filter)
	if err != nil {
		return err
	}

	return render.Runs(cmd.OutOrStdout(), list, outputFormat())
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	runs, err := openHistory(true)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	run, err := runs.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return render.Run(cmd.OutOrStdout(), run, outputFormat())
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	olderThan := historyOlderThan
	if olderThan <= 0 {
		olderThan = appConfig.History.Retention.Duration
	}

	runs, err := openHistory(true)
	if err != nil {
		return err
	}
	defer closeHistory(runs)

	deleted, err := runs.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}

	logger.Info("history pruned", mclog.Fields{"deleted": deleted, "older_than": olderThan.String()})
	fmt.Fprintf(cmd.OutOrStdout(), "%d Läufe gelöscht (älter als %s)\n", deleted, olderThan)
	return nil
}
