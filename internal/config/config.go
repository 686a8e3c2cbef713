// Package config provides YAML-based configuration loading and difficulty
// presets for the spike runner.
package config

// RunnerConfig contains all tuning for the spike runner. Values are read once
// per run and never mutated by the simulation.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Jump      JumpConfig     `yaml:"jump"`
	Level     LevelConfig    `yaml:"level"`
	Particles ParticleConfig `yaml:"particles"`
	Render    RenderConfig   `yaml:"render"`
}

// WorldConfig defines the playfield in simulation pixels.
type WorldConfig struct {
	GroundY     float64 `yaml:"ground_y"`     // Ground line; y grows downward
	CeilingY    float64 `yaml:"ceiling_y"`    // Ceiling line
	ScrollSpeed float64 `yaml:"scroll_speed"` // Camera advance per tick
	ViewWidth   float64 `yaml:"view_width"`   // Width of the renderable window
	GravitySign float64 `yaml:"gravity_sign"` // +1 down, -1 up; 0 means down
}

// PlayerConfig defines the player box. X is fixed in screen space.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumpConfig defines jump and gravity tuning. Zero caps disable capping.
type JumpConfig struct {
	InitialVelocityUp      float64 `yaml:"initial_velocity_up"`
	GravityMultiplier      float64 `yaml:"gravity_multiplier"`
	RotationRadiansPerJump float64 `yaml:"rotation_radians_per_jump"`
	VelocityCapDown        float64 `yaml:"velocity_cap_down"`
	VelocityCapUp          float64 `yaml:"velocity_cap_up"`
}

// LevelConfig drives procedural level generation.
type LevelConfig struct {
	FirstObstacleDistance float64 `yaml:"first_obstacle_distance"`
	MinDistanceBetween    float64 `yaml:"min_distance_between"`
	MaxDistanceBetween    float64 `yaml:"max_distance_between"`
	ChanceTwoInRowPercent float64 `yaml:"chance_two_in_row_percent"`
	ObstacleCount         int     `yaml:"obstacle_count"`

	SpikeWidth     float64 `yaml:"spike_width"`
	SpikeHeight    float64 `yaml:"spike_height"`
	PortalWidth    float64 `yaml:"portal_width"`
	GoalOffset     float64 `yaml:"goal_offset"`     // Gap between last cursor and portal
	TrailingMargin float64 `yaml:"trailing_margin"` // Level length past the portal
}

// ParticleConfig defines friction particle behavior.
type ParticleConfig struct {
	MaxAge    int     `yaml:"max_age"` // Ticks a particle lives
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	SpeedX    float64 `yaml:"speed_x"` // Max backward drift per tick
	SpeedY    float64 `yaml:"speed_y"` // Max kick away from the surface per tick
}

// RenderConfig defines how simulation pixels map to terminal cells.
type RenderConfig struct {
	PixelsPerColumn float64 `yaml:"pixels_per_column"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
