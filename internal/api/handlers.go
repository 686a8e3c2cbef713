package api

import (
	"net/http"
	"time"

	"github.com/vovakirdan/spike-runner/internal/games/runner"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

// RecordsResponse is the body of GET /api/records.
type RecordsResponse struct {
	Deaths int `json:"deaths"`
	Record int `json:"record"`
}

// RunResponse is one run in list responses.
type RunResponse struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	Runs        int       `json:"runs"`
	Completions int       `json:"completions"`
	HighScore   int       `json:"high_score"`
	AvgScore    float64   `json:"avg_score"`
	LastPlayed  time.Time `json:"last_played,omitzero"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	rec := runner.LoadRecords(s.store)
	s.writeJSON(w, http.StatusOK, RecordsResponse{Deaths: rec.Deaths, Record: rec.Record})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	s.listRuns(w, r, s.store.TopScores)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	s.listRuns(w, r, s.store.RecentRuns)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request, query func(string, int) ([]storage.RunEntry, error)) {
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := query(runner.GameID, limit)
	if err != nil {
		s.logger.Error("query runs", "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	out := make([]RunResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RunResponse{
			ID:        e.ID,
			Score:     e.Score,
			Outcome:   e.Outcome,
			CreatedAt: e.CreatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetGameStats(runner.GameID)
	if err != nil {
		s.logger.Error("query stats", "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	s.writeJSON(w, http.StatusOK, StatsResponse{
		Runs:        stats.RunsCount,
		Completions: stats.Completions,
		HighScore:   stats.HighScore,
		AvgScore:    stats.AvgScore,
		LastPlayed:  stats.LastPlayed,
	})
}
