package runner

import "github.com/vovakirdan/spike-runner/internal/core"

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Simulation ticking
	PhaseEnded                // Death or goal; waits for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// RunState is the scoring side of a simulation.
type RunState struct {
	Phase      Phase
	CameraX    float64 // World-space scroll offset
	Progress   float64 // 0..100, non-decreasing within a run
	Deaths     int     // Session-wide, persisted by the platform
	Record     int     // Best final progress, persisted by the platform
	Outcome    core.OutcomeKind
	FinalScore int
}

// StepReport is what one simulation tick tells its collaborators.
type StepReport struct {
	Events  []core.Event
	Outcome *core.Outcome // Non-nil only on the tick a run ends
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase      Phase
	Player     Player
	Obstacles  []Obstacle // Only those inside the view window
	Particles  []Particle
	Goal       Goal
	CameraX    float64
	Progress   float64
	Deaths     int
	Record     int
	Outcome    core.OutcomeKind
	FinalScore int
}
