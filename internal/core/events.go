package core

// Event is a discrete, named happening inside a tick. Collaborators such as
// the audio layer map events to effects; the simulation attaches no behavior.
type Event string

const (
	EventRunStarted  Event = "run-started"
	EventJump        Event = "jump"
	EventHazardHit   Event = "hazard-hit"
	EventGoalReached Event = "goal-reached"
)

// OutcomeKind tells how a run ended.
type OutcomeKind string

const (
	OutcomeDeath    OutcomeKind = "death"
	OutcomeComplete OutcomeKind = "complete"
)

// Outcome describes a finished run and the counters the platform should
// persist after the tick.
type Outcome struct {
	Kind         OutcomeKind
	Score        int  // Final progress, 0..100
	Deaths       int  // Death counter after this run
	Record       int  // Best progress after this run
	RecordBroken bool // Score raised the record
}

// KV is the key-value persistence used for integer counters.
// Implementations decide how keys are stored; callers treat read
// failures as zero values.
type KV interface {
	GetInt(key string) (int, error)
	SetInt(key string, value int) error
}

// Counters is a KV whose counters can be updated in place, so several
// writers sharing one store never lose an increment or lower a maximum.
type Counters interface {
	KV
	// IncrInt adds delta to key and returns the new value.
	IncrInt(key string, delta int) (int, error)
	// MaxInt raises key to value if value is larger and returns the
	// stored value.
	MaxInt(key string, value int) (int, error)
}
