package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

var flagResetRecords bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show or reset the death counter and best progress",
	Long: `Display the persisted death counter and best progress.

These counters are shown in the game HUD and survive restarts. The run
log shown by 'runner scores' is kept separately.

Examples:
  runner records
  runner records --reset`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagResetRecords, "reset", false, "Reset deaths and record to zero")
}

func runRecords(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagResetRecords {
		if err := store.ClearKeys(runner.GameID + "."); err != nil {
			return err
		}
		fmt.Fprintln(out, "Records reset.")
		return nil
	}

	r := runner.LoadRecords(store)
	fmt.Fprintf(out, "Best:   %d%%\n", r.Record)
	fmt.Fprintf(out, "Deaths: %d\n", r.Deaths)
	return nil
}
