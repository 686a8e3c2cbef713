package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/platform/tui"
	"github.com/vovakirdan/spike-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Spike Runner in interactive menu mode.

The menu shows your best progress and death count. Pick Play to start a
course, High Scores to browse past runs. Pressing B in a game returns
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runner.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newGameLogger()
	defer closeLog()
	applyGameFlags()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sounds := startAudio(flagMute, logger)
	if sounds != nil {
		defer sounds.Cleanup()
	}

	var kv core.KV
	var scores tui.ScoreSource
	if store != nil {
		kv = store
		scores = store
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(kv, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(scores, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			game, err := registry.Create(runner.GameID)
			if err != nil {
				return err
			}
			// A fixed --seed replays the same course every time.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			goBack, err := tui.Run(game, gameOptions(store, sounds, logger), cfg)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
