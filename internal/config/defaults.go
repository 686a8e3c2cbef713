package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default spike runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			GroundY:     880,
			CeilingY:    200,
			ScrollSpeed: 9,
			ViewWidth:   1600,
			GravitySign: 1,
		},
		Player: PlayerConfig{
			X:      300,
			Width:  80,
			Height: 80,
		},
		Jump: JumpConfig{
			InitialVelocityUp:      22,
			GravityMultiplier:      1.3,
			RotationRadiansPerJump: 1.5707963267948966, // quarter turn
			VelocityCapDown:        0,
			VelocityCapUp:          0,
		},
		Level: LevelConfig{
			FirstObstacleDistance: 1500,
			MinDistanceBetween:    450,
			MaxDistanceBetween:    900,
			ChanceTwoInRowPercent: 20,
			ObstacleCount:         30,
			SpikeWidth:            55,
			SpikeHeight:           60,
			PortalWidth:           120,
			GoalOffset:            300,
			TrailingMargin:        200,
		},
		Particles: ParticleConfig{
			MaxAge:    24,
			MinRadius: 2,
			MaxRadius: 5,
			SpeedX:    3,
			SpeedY:    2,
		},
		Render: RenderConfig{
			PixelsPerColumn: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
