package runner

import "github.com/vovakirdan/spike-runner/internal/config"

// Rand is the random source used by level generation and particles.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
}

// ObstacleKind identifies the hazard type. Only spikes exist.
type ObstacleKind int

const (
	KindSpike ObstacleKind = iota
)

// Obstacle is an immutable hazard placed in world space.
type Obstacle struct {
	Kind   ObstacleKind
	X      float64 // World-space left edge
	Width  float64
	Height float64
}

// Goal is the finish portal: a horizontal world-space interval.
type Goal struct {
	X     float64 // World-space left edge
	Width float64
}

// Right returns the world-space right edge of the portal.
func (g Goal) Right() float64 {
	return g.X + g.Width
}

// Level is one generated course.
type Level struct {
	Obstacles []Obstacle // Non-decreasing X for sane configs
	Goal      Goal
	Length    float64 // Total world length used for progress
}

// Generate builds a level from the tuning parameters and random source.
// The config is not validated: inverted distance ranges or a zero obstacle
// budget produce collapsed or empty levels.
func Generate(cfg config.LevelConfig, rng Rand) Level {
	obstacles := make([]Obstacle, 0, max(cfg.ObstacleCount, 0))
	cursor := cfg.FirstObstacleDistance

	for i := 0; i < cfg.ObstacleCount; i++ {
		obstacles = append(obstacles, newSpike(cfg, cursor))

		// A pair needs room left in the budget
		if i+1 < cfg.ObstacleCount && rng.Float64()*100 < cfg.ChanceTwoInRowPercent {
			x := cursor + cfg.SpikeWidth + rng.Float64()
			obstacles = append(obstacles, newSpike(cfg, x))
			i++
		}

		cursor += cfg.MinDistanceBetween + rng.Float64()*(cfg.MaxDistanceBetween-cfg.MinDistanceBetween)
	}

	goal := Goal{X: cursor + cfg.GoalOffset, Width: cfg.PortalWidth}
	return Level{
		Obstacles: obstacles,
		Goal:      goal,
		Length:    goal.Right() + cfg.TrailingMargin,
	}
}

func newSpike(cfg config.LevelConfig, x float64) Obstacle {
	return Obstacle{
		Kind:   KindSpike,
		X:      x,
		Width:  cfg.SpikeWidth,
		Height: cfg.SpikeHeight,
	}
}
