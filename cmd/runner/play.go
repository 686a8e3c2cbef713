package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/audio"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/platform/tui"
	"github.com/vovakirdan/spike-runner/internal/registry"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the course",
	Long: `Start a run straight away.

Controls:
  Space/Up/W  - Jump (also starts the first run)
  Enter       - Start
  P/Esc       - Pause
  R           - Restart (after a crash or at the portal)
  Ctrl+S      - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider gaps, fewer double spikes
  normal - The default course
  hard   - Tighter gaps, more double spikes, longer course

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner play --config ./my-course.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// applyGameFlags hands the course flags to the runner before it is created.
func applyGameFlags() {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
}

// gameOptions wires the optional collaborators, keeping nil values nil.
func gameOptions(store *storage.Store, sounds *audio.SoundManager, logger *log.Logger) tui.Options {
	opts := tui.Options{Logger: logger}
	if store != nil {
		opts.Store = store
	}
	if sounds != nil {
		opts.Sounds = sounds
	}
	return opts
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := newGameLogger()
	defer closeLog()
	applyGameFlags()

	game, err := registry.Create(runner.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sounds := startAudio(flagMute, logger)
	if sounds != nil {
		defer sounds.Cleanup()
	}

	if _, err := tui.Run(game, gameOptions(store, sounds, logger), runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
