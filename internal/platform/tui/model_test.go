package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
)

type savedRun struct {
	gameID  string
	score   int
	outcome core.OutcomeKind
}

type fakeStore struct {
	ints    map[string]int
	runs    []savedRun
	failRun bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{ints: make(map[string]int)}
}

func (s *fakeStore) GetInt(key string) (int, error) {
	return s.ints[key], nil
}

func (s *fakeStore) SetInt(key string, value int) error {
	s.ints[key] = value
	return nil
}

func (s *fakeStore) SaveRun(gameID string, score int, outcome core.OutcomeKind) (string, error) {
	if s.failRun {
		return "", errors.New("disk full")
	}
	s.runs = append(s.runs, savedRun{gameID, score, outcome})
	return "id", nil
}

type fakeSink struct {
	events []core.Event
}

func (f *fakeSink) HandleEvents(events []core.Event) {
	f.events = append(f.events, events...)
}

func newTestModel(t *testing.T, store *fakeStore, sink *fakeSink) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	opts := Options{Sounds: sink}
	if store != nil {
		opts.Store = store
	}
	m := NewModel(runner.New(), opts, cfg)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

// runUntilOver ticks without input until the run ends.
func runUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for range 2000 {
		m = tick(t, m)
		if m.State().GameOver {
			return m
		}
	}
	t.Fatal("run did not end")
	return m
}

func TestModelStartsOnJump(t *testing.T) {
	sink := &fakeSink{}
	m := newTestModel(t, nil, sink)

	m = tick(t, m)
	if m.State().Started {
		t.Fatal("game should wait on the title card")
	}

	m, _ = update(t, m, runeKey('w'))
	m = tick(t, m)
	if !m.State().Started {
		t.Fatal("jump should start the run")
	}
	if len(sink.events) == 0 || sink.events[0] != core.EventRunStarted {
		t.Errorf("expected run-started event, got %v", sink.events)
	}
}

func TestModelPersistsOutcome(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store, &fakeSink{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runUntilOver(t, m)

	if len(store.runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run.gameID != runner.GameID || run.outcome != core.OutcomeDeath {
		t.Errorf("unexpected run %+v", run)
	}
	if run.score != m.State().Score {
		t.Errorf("saved score %d, state score %d", run.score, m.State().Score)
	}
	if store.ints[runner.KeyDeaths] != 1 {
		t.Errorf("deaths = %d, expected 1", store.ints[runner.KeyDeaths])
	}
	if store.ints[runner.KeyRecord] != run.score {
		t.Errorf("record = %d, expected %d", store.ints[runner.KeyRecord], run.score)
	}

	// The ended screen is frozen; no further runs are saved.
	for range 10 {
		m = tick(t, m)
	}
	if len(store.runs) != 1 {
		t.Errorf("ended run saved again: %d runs", len(store.runs))
	}
}

func TestModelLoadsRecordsFromStore(t *testing.T) {
	store := newFakeStore()
	store.ints[runner.KeyDeaths] = 4
	store.ints[runner.KeyRecord] = 55

	m := newTestModel(t, store, &fakeSink{})
	m = tick(t, m)

	if !strings.Contains(m.View(), "Deaths: 4") {
		t.Error("stored deaths should be shown")
	}
}

func TestModelSaveFailureKeepsPlaying(t *testing.T) {
	store := newFakeStore()
	store.failRun = true
	m := newTestModel(t, store, &fakeSink{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runUntilOver(t, m)

	if store.ints[runner.KeyDeaths] != 1 {
		t.Error("records should be saved even if the run log fails")
	}

	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m)
	if m.State().GameOver {
		t.Error("restart should begin a new run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil, &fakeSink{})
	m, _ = update(t, m, runeKey(' '))
	for range 20 {
		m = tick(t, m)
	}
	before := m.State()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}

	m = tick(t, m)
	if !m.State().Started || m.State().Score < before.Score {
		t.Errorf("resize should not reset the run: before %+v after %+v", before, m.State())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, nil, &fakeSink{})

	quit, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !quit.quitting {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}

	back, cmd := update(t, m, runeKey('b'))
	if cmd == nil || !back.BackToMenu() {
		t.Error("b should go back to the menu")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, nil, &fakeSink{})
	m, _ = update(t, m, runeKey(' '))
	m = tick(t, m)

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("p should pause the run")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.State().Paused {
		t.Error("esc should resume")
	}
}

func TestModelsSharingStoreKeepRecord(t *testing.T) {
	store := openTestStore(t)

	// Both sessions load their counters before either run ends.
	first := newTestModel(t, nil, &fakeSink{})
	first.store = store
	second := newTestModel(t, nil, &fakeSink{})
	second.store = store

	first.persistOutcome(core.Outcome{Kind: core.OutcomeComplete, Score: 90, Deaths: 0, Record: 90})
	second.persistOutcome(core.Outcome{Kind: core.OutcomeDeath, Score: 10, Deaths: 1, Record: 10})

	if got, _ := store.GetInt(runner.KeyRecord); got != 90 {
		t.Errorf("stored record = %d, expected 90", got)
	}
	if got, _ := store.GetInt(runner.KeyDeaths); got != 1 {
		t.Errorf("stored deaths = %d, expected 1", got)
	}

	second.persistOutcome(core.Outcome{Kind: core.OutcomeDeath, Score: 20, Deaths: 2, Record: 20})
	if got, _ := store.GetInt(runner.KeyDeaths); got != 2 {
		t.Errorf("stored deaths = %d, expected 2", got)
	}

	runs, err := store.RecentRuns(runner.GameID, 10)
	if err != nil || len(runs) != 3 {
		t.Errorf("expected 3 logged runs, got %d (%v)", len(runs), err)
	}
}
