package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/internal/history/store"
	"github.com/msto63/mcalc/internal/render"
)

// newEngine creates an engine for the configured dialect logging to log
func newEngine(log *mclog.Logger, recordTokens bool) *mcl.Engine {
	return mcl.New(mcl.Options{
		Logger:         log,
		Operators:      appConfig.OperatorSet(),
		RecordTokens:   recordTokens,
		MaxSourceBytes: appConfig.Language.MaxSourceBytes,
	})
}

// outputFormat returns the validated output format
func outputFormat() render.Format {
	f, err := render.ParseFormat(appConfig.Output.Format)
	if err != nil {
		return render.FormatTable
	}
	return f
}

// readProgram reads the program from the file in args or from stdin
func readProgram(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		return mcl.ReadSource(cmd.InOrStdin())
	}
	return readProgramFile(args[0])
}

func readProgramFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", mcerror.Wrap(err, "Programmdatei kann nicht geöffnet werden").
			WithCode(mcerror.CodeIOError).
			WithOperation("cmd.readProgram").
			WithDetail("path", path)
	}
	defer f.Close()

	return mcl.ReadSource(f)
}

// openHistory opens the run store when recording is requested
func openHistory(force bool) (*store.SQLiteRunStore, error) {
	if !force && !appConfig.History.Enabled {
		return nil, nil
	}
	return store.NewSQLiteRunStore(store.SQLiteRunConfig{Path: appConfig.History.Path})
}

// recordRun stores a run; failures are logged and never fail the command
func recordRun(ctx context.Context, runs *store.SQLiteRunStore, source string, result *mcl.Result, evalErr error) {
	if runs == nil {
		return
	}

	run := store.NewRun(source, appConfig.OperatorSet().String(), result, evalErr)
	if err := runs.Record(ctx, run); err != nil {
		logger.LogError(err)
		return
	}
	logger.Debug("run recorded", mclog.Fields{"id": run.ID, "status": string(run.Status)})
}

// closeHistory closes the run store if one was opened
func closeHistory(runs *store.SQLiteRunStore) {
	if runs == nil {
		return
	}
	if err := runs.Close(); err != nil {
		logger.WarnWithErr("failed to close history", err)
	}
}
