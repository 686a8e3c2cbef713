package runner

import (
	"math"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
)

// Simulation owns one player's run: level, player, particles and scoring.
// It is single-threaded; callers drive it with Start, Jump and Step.
type Simulation struct {
	cfg       config.RunnerConfig
	rng       Rand
	state     RunState
	player    Player
	level     Level
	particles []Particle
	pending   []core.Event // Raised between ticks, reported by the next Step
}

// NewSimulation creates an idle simulation carrying the given counters.
func NewSimulation(cfg config.RunnerConfig, rng Rand, rec Records) *Simulation {
	s := &Simulation{
		cfg: cfg,
		rng: rng,
		state: RunState{
			Phase:  PhaseIdle,
			Deaths: rec.Deaths,
			Record: rec.Record,
		},
		particles: make([]Particle, 0, 64),
	}
	s.player = s.freshPlayer()
	return s
}

// gravitySign resolves the configured gravity direction.
func (s *Simulation) gravitySign() float64 {
	if s.cfg.World.GravitySign < 0 {
		return -1
	}
	return 1
}

// freshPlayer returns a player resting on its gravity surface.
func (s *Simulation) freshPlayer() Player {
	p := Player{
		X:           s.cfg.Player.X,
		Width:       s.cfg.Player.Width,
		Height:      s.cfg.Player.Height,
		OnGround:    true,
		GravitySign: s.gravitySign(),
	}
	if p.GravitySign > 0 {
		p.Y = s.cfg.World.GroundY - p.Height
	} else {
		p.Y = s.cfg.World.CeilingY
	}
	return p
}

// Start begins a run from Idle or Ended. It rebuilds the level, resets the
// player, camera and particles, and reports false if a run is in progress.
func (s *Simulation) Start() bool {
	if s.state.Phase == PhaseRunning {
		return false
	}

	s.level = Generate(s.cfg.Level, s.rng)
	s.player = s.freshPlayer()
	s.particles = s.particles[:0]
	s.state.Phase = PhaseRunning
	s.state.CameraX = 0
	s.state.Progress = 0
	s.state.Outcome = ""
	s.state.FinalScore = 0

	s.pending = append(s.pending, core.EventRunStarted)
	return true
}

// Restart is Start under the name used after a run ends.
func (s *Simulation) Restart() bool {
	return s.Start()
}

// Jump applies the jump impulse. It is a no-op unless a run is active and
// the player is on its surface; the return value tells whether it fired.
func (s *Simulation) Jump() bool {
	if s.state.Phase != PhaseRunning || !s.player.OnGround {
		return false
	}

	s.player.VY = -s.player.GravitySign * s.cfg.Jump.InitialVelocityUp
	s.player.OnGround = false
	s.player.Rotation += s.cfg.Jump.RotationRadiansPerJump

	s.pending = append(s.pending, core.EventJump)
	return true
}

// Step advances the run by one tick. Ended and idle simulations only flush
// events raised since the previous tick.
func (s *Simulation) Step() StepReport {
	report := StepReport{Events: s.drainEvents()}
	if s.state.Phase != PhaseRunning {
		return report
	}

	w := s.cfg.World
	sign := s.player.GravitySign

	Integrate(&s.player, sign, s.cfg.Jump.GravityMultiplier, w.GroundY, w.CeilingY,
		s.cfg.Jump.VelocityCapDown, s.cfg.Jump.VelocityCapUp)

	if s.player.OnGround {
		s.particles = append(s.particles, Emit(s.player, sign, s.state.CameraX, s.cfg.Particles, s.rng)...)
	}
	s.particles = TickParticles(s.particles)

	s.state.CameraX += w.ScrollSpeed
	s.updateProgress()

	for _, o := range s.level.Obstacles {
		if CheckHazard(s.player, o, s.state.CameraX, w.GroundY, w.CeilingY, sign) {
			report.Events = append(report.Events, core.EventHazardHit)
			report.Outcome = s.end(core.OutcomeDeath)
			return report
		}
	}

	if CheckGoal(s.player, s.level.Goal, s.state.CameraX) {
		s.state.Progress = 100
		report.Events = append(report.Events, core.EventGoalReached)
		report.Outcome = s.end(core.OutcomeComplete)
	}

	return report
}

// updateProgress recomputes progress from the camera without letting it fall.
func (s *Simulation) updateProgress() {
	if s.level.Length <= 0 {
		return
	}
	p := core.ClampF(s.state.CameraX/s.level.Length*100, 0, 100)
	if p > s.state.Progress {
		s.state.Progress = p
	}
}

// end moves the run to Ended and settles deaths and the record.
func (s *Simulation) end(kind core.OutcomeKind) *core.Outcome {
	s.state.Phase = PhaseEnded
	s.state.Outcome = kind
	s.state.FinalScore = int(math.Floor(core.ClampF(s.state.Progress, 0, 100)))

	if kind == core.OutcomeDeath {
		s.state.Deaths++
	}

	broken := s.state.FinalScore > s.state.Record
	if broken {
		s.state.Record = s.state.FinalScore
	}

	return &core.Outcome{
		Kind:         kind,
		Score:        s.state.FinalScore,
		Deaths:       s.state.Deaths,
		Record:       s.state.Record,
		RecordBroken: broken,
	}
}

func (s *Simulation) drainEvents() []core.Event {
	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}

// Phase returns the current lifecycle phase.
func (s *Simulation) Phase() Phase { return s.state.Phase }

// Player returns a copy of the player.
func (s *Simulation) Player() Player { return s.player }

// Goal returns the portal of the current level.
func (s *Simulation) Goal() Goal { return s.level.Goal }

// Level returns the current level. Obstacles must not be modified.
func (s *Simulation) Level() Level { return s.level }

// Progress returns the run progress percentage.
func (s *Simulation) Progress() float64 { return s.state.Progress }

// CameraX returns the world-space scroll offset.
func (s *Simulation) CameraX() float64 { return s.state.CameraX }

// Deaths returns the session death counter.
func (s *Simulation) Deaths() int { return s.state.Deaths }

// Record returns the best final progress.
func (s *Simulation) Record() int { return s.state.Record }

// Records returns the counters that should outlive this simulation.
func (s *Simulation) Records() Records {
	return Records{Deaths: s.state.Deaths, Record: s.state.Record}
}

// Outcome returns how the last run ended, empty while running.
func (s *Simulation) Outcome() core.OutcomeKind { return s.state.Outcome }

// FinalScore returns the floored progress of the last ended run.
func (s *Simulation) FinalScore() int { return s.state.FinalScore }

// Particles returns a copy of the live particles.
func (s *Simulation) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// VisibleObstacles returns obstacles whose screen-space extent falls inside
// [0, viewWidth).
func (s *Simulation) VisibleObstacles(viewWidth float64) []Obstacle {
	var out []Obstacle
	for _, o := range s.level.Obstacles {
		sx := o.X - s.state.CameraX
		if core.IntervalsOverlap(sx, sx+o.Width, 0, viewWidth) {
			out = append(out, o)
		}
	}
	return out
}

// Snapshot captures the presentation state after a tick.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.state.Phase,
		Player:     s.player,
		Obstacles:  s.VisibleObstacles(s.cfg.World.ViewWidth),
		Particles:  s.Particles(),
		Goal:       s.level.Goal,
		CameraX:    s.state.CameraX,
		Progress:   s.state.Progress,
		Deaths:     s.state.Deaths,
		Record:     s.state.Record,
		Outcome:    s.state.Outcome,
		FinalScore: s.state.FinalScore,
	}
}
