package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/registry"
)

// RunStore persists finished runs and the runner's counters.
type RunStore interface {
	core.KV
	SaveRun(gameID string, score int, outcome core.OutcomeKind) (string, error)
}

// EventSink receives the events emitted by each tick.
type EventSink interface {
	HandleEvents(events []core.Event)
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  RunStore
	Sounds EventSink
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunStore
	sounds     EventSink
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if opts.Store != nil {
		cfg.Records = opts.Store
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		sounds:     opts.Sounds,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
	}
}

// playfieldHeight leaves the last terminal row for the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The runner scales the world to
// the buffer on every render, so the run in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.sounds != nil && len(result.Events) > 0 {
		m.sounds.HandleEvents(result.Events)
	}
	if result.Outcome != nil {
		m.persistOutcome(*result.Outcome)
	}

	return m, tickCmd(m.config.TickRate)
}

// persistOutcome records a finished run. Failures are logged and the game
// continues with its in-memory counters.
func (m Model) persistOutcome(o core.Outcome) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), o.Score, o.Kind); err != nil {
		m.logger.Debug("save run failed", "game", m.game.ID(), "err", err)
	}
	stored, err := runner.SaveOutcome(m.store, o)
	if err != nil {
		m.logger.Debug("save records failed", "game", m.game.ID(), "err", err)
	}
	m.logger.Debug("run finished",
		"kind", o.Kind,
		"score", o.Score,
		"deaths", stored.Deaths,
		"record", stored.Record,
		"record_broken", o.RecordBroken,
	)
}

// saveScreenshot writes the current screen to ~/.runner/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys.Keys()))
}

// BackToMenu reports whether the player left the game with the back key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}
