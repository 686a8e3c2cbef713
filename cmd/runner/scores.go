package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best or most recent runs",
	Long: `Display logged runs with their final progress and outcome.

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run log")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(runner.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run log cleared.")
		return nil
	}

	title := "High Scores"
	fetch := store.TopScores
	if flagRecent {
		title = "Recent Runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(runner.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "%s - Spike Runner\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runner play' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Progress", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "----", "--------", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-8s  %s\n",
			i+1, fmt.Sprintf("%d%%", r.Score), r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(runner.GameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d%%  Runs: %d  Cleared: %d  Average: %.1f%%\n",
			stats.HighScore, stats.RunsCount, stats.Completions, stats.AvgScore)
	}
	return nil
}
