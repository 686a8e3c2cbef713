// Package runner implements a side-scrolling spike runner. A square runs
// automatically through a generated course, jumps over triangular spikes and
// finishes at a portal. The simulation is pure and deterministic for a given
// seed; persistence, audio and display are left to the platform.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/registry"
)

// GameID is the registry identifier and score-table key.
const GameID = "runner"

// Game adapts a Simulation to the registry.Game interface.
type Game struct {
	sim     *Simulation
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config as is).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Spike Runner"
}

// loadConfig resolves the runner config, falling back to defaults.
func loadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes the game or restarts it with a new seed. Counters are
// read from runtime.Records on the first reset and carried afterwards.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = loadConfig()
	g.paused = false

	rng := rand.New(rand.NewSource(runtime.Seed))

	if g.sim == nil {
		g.sim = NewSimulation(g.cfg, rng, LoadRecords(runtime.Records))
		return
	}

	wasIdle := g.sim.Phase() == PhaseIdle
	g.sim = NewSimulation(g.cfg, rng, g.sim.Records())
	if !wasIdle {
		g.sim.Start()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.sim.Phase() == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.sim.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		}
	case PhaseEnded:
		if in.Has(core.ActionRestart) {
			g.sim.Restart()
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) {
			g.sim.Jump()
		}
	}

	report := g.sim.Step()
	return core.StepResult{
		State:   g.State(),
		Events:  report.Events,
		Outcome: report.Outcome,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}

	score := int(g.sim.Progress())
	if g.sim.Phase() == PhaseEnded {
		score = g.sim.FinalScore()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.sim.Phase() == PhaseEnded,
		Paused:   g.paused,
		Started:  g.sim.Phase() != PhaseIdle,
	}
}

// Simulation exposes the underlying simulation for read-only inspection.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
