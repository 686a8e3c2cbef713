package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		flagRecent, flagClear, flagResetRecords = false, false, false
		flagLimit = 10
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func seededDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runner.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	for _, s := range []int{35, 100, 62} {
		kind := core.OutcomeDeath
		if s == 100 {
			kind = core.OutcomeComplete
		}
		if _, err := store.SaveRun(runner.GameID, s, kind); err != nil {
			t.Fatalf("save run: %v", err)
		}
	}
	if err := runner.SaveRecords(store, runner.Records{Deaths: 2, Record: 100}); err != nil {
		t.Fatalf("save records: %v", err)
	}
	return path
}

func TestScoresCommand(t *testing.T) {
	db := seededDB(t)

	out := execute(t, "--db", db, "scores")
	if !strings.Contains(out, "High Scores") {
		t.Errorf("missing title:\n%s", out)
	}
	first := strings.Index(out, "100%")
	second := strings.Index(out, "62%")
	if first < 0 || second < 0 || first > second {
		t.Errorf("runs should be ordered best first:\n%s", out)
	}

	out = execute(t, "--db", db, "scores", "--recent", "--limit", "1")
	if !strings.Contains(out, "Recent Runs") || !strings.Contains(out, "62%") || strings.Contains(out, "35%") {
		t.Errorf("unexpected recent output:\n%s", out)
	}
}

func TestScoresClear(t *testing.T) {
	db := seededDB(t)

	execute(t, "--db", db, "scores", "--clear")
	out := execute(t, "--db", db, "scores")
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("log should be empty:\n%s", out)
	}
}

func TestRecordsCommand(t *testing.T) {
	db := seededDB(t)

	out := execute(t, "--db", db, "records")
	if !strings.Contains(out, "Best:   100%") || !strings.Contains(out, "Deaths: 2") {
		t.Errorf("unexpected records output:\n%s", out)
	}

	execute(t, "--db", db, "records", "--reset")
	out = execute(t, "--db", db, "records")
	if !strings.Contains(out, "Best:   0%") || !strings.Contains(out, "Deaths: 0") {
		t.Errorf("records should be reset:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	if !strings.Contains(out, runner.GameID) || !strings.Contains(out, "Spike Runner") {
		t.Errorf("runner missing from list:\n%s", out)
	}
}
