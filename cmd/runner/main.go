// runner is a terminal spike runner: a square auto-runs through a generated
// course, jumping over spikes on its way to the portal.
//
// Usage:
//
//	runner play              - Play the course
//	runner menu              - Start the interactive menu
//	runner scores            - Show the best or most recent runs
//	runner records           - Show or reset the death counter and record
//	runner serve             - Start SSH server for remote play
//	runner api               - Serve records and runs over HTTP
//	runner list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible courses
//	--db <path>     - Set database path (default: ~/.runner/runner.db)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/spike-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Spike Runner - jump the spikes, reach the portal",
	Long: `Spike Runner is a side-scrolling runner for the terminal.

Your square runs on its own. Jump over the spikes and reach the portal
at the end of the course. Progress, deaths and your best run are kept
between sessions.

Available commands:
  play     - Play the course directly
  menu     - Interactive menu with scores
  scores   - View best or recent runs
  records  - View or reset deaths and record
  serve    - Start SSH server for remote play
  api      - Serve records over HTTP

Examples:
  runner play
  runner play --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner api --addr :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
