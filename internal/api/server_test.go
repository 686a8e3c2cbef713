package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h := NewServer(newTestStore(t), nil).Routes()

	rec := get(t, h, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d, expected 200", rec.Code)
	}
}

func TestRecords(t *testing.T) {
	store := newTestStore(t)
	h := NewServer(store, nil).Routes()

	rec := get(t, h, "/api/records")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[RecordsResponse](t, rec); got != (RecordsResponse{}) {
		t.Errorf("empty records = %+v", got)
	}

	if err := runner.SaveRecords(store, runner.Records{Deaths: 12, Record: 73}); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}
	rec = get(t, h, "/api/records")
	if got := decode[RecordsResponse](t, rec); got != (RecordsResponse{Deaths: 12, Record: 73}) {
		t.Errorf("records = %+v, expected {12 73}", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestScoresAndRuns(t *testing.T) {
	store := newTestStore(t)
	for _, score := range []int{15, 100, 42} {
		outcome := core.OutcomeDeath
		if score == 100 {
			outcome = core.OutcomeComplete
		}
		if _, err := store.SaveRun(runner.GameID, score, outcome); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}
	h := NewServer(store, nil).Routes()

	scores := decode[[]RunResponse](t, get(t, h, "/api/scores?limit=2"))
	if len(scores) != 2 || scores[0].Score != 100 || scores[1].Score != 42 {
		t.Errorf("scores = %+v, expected [100 42]", scores)
	}
	if scores[0].Outcome != "complete" || scores[0].ID == "" {
		t.Errorf("top run = %+v", scores[0])
	}

	runs := decode[[]RunResponse](t, get(t, h, "/api/runs"))
	if len(runs) != 3 || runs[0].Score != 42 {
		t.Errorf("runs = %+v, expected newest first", runs)
	}
}

func TestScoresBadLimit(t *testing.T) {
	h := NewServer(newTestStore(t), nil).Routes()

	for _, q := range []string{"limit=abc", "limit=0", "limit=-4"} {
		rec := get(t, h, "/api/scores?"+q)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, expected 400", q, rec.Code)
		}
	}
}

func TestEmptyListIsArray(t *testing.T) {
	h := NewServer(newTestStore(t), nil).Routes()

	rec := get(t, h, "/api/scores")
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("empty scores body = %q, expected []", body)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	store.SaveRun(runner.GameID, 50, core.OutcomeDeath)
	store.SaveRun(runner.GameID, 100, core.OutcomeComplete)
	h := NewServer(store, nil).Routes()

	stats := decode[StatsResponse](t, get(t, h, "/api/stats"))
	if stats.Runs != 2 || stats.Completions != 1 || stats.HighScore != 100 || stats.AvgScore != 75 {
		t.Errorf("stats = %+v", stats)
	}
}

// failingStore fails every query.
type failingStore struct{}

var errDown = errors.New("down")

func (failingStore) GetInt(string) (int, error) { return 0, errDown }
func (failingStore) SetInt(string, int) error   { return errDown }
func (failingStore) TopScores(string, int) ([]storage.RunEntry, error) {
	return nil, errDown
}
func (failingStore) RecentRuns(string, int) ([]storage.RunEntry, error) {
	return nil, errDown
}
func (failingStore) GetGameStats(string) (*storage.GameStats, error) {
	return nil, errDown
}

func TestStorageFailures(t *testing.T) {
	h := NewServer(failingStore{}, nil).Routes()

	for _, path := range []string{"/api/scores", "/api/runs", "/api/stats"} {
		if rec := get(t, h, path); rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s = %d, expected 500", path, rec.Code)
		}
	}

	// Records are best-effort and read as zero.
	rec := get(t, h, "/api/records")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/records = %d, expected 200", rec.Code)
	}
	if got := decode[RecordsResponse](t, rec); got != (RecordsResponse{}) {
		t.Errorf("records = %+v, expected zero", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := NewServer(newTestStore(t), nil).Routes()
	if rec := get(t, h, "/api/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}
