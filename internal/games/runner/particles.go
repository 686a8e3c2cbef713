package runner

import "github.com/vovakirdan/spike-runner/internal/config"

// particlesPerEmit is the number of friction particles spawned per call.
const particlesPerEmit = 2

// Particle is a short-lived cosmetic spark anchored in world space.
type Particle struct {
	X, Y   float64 // World-space position
	VX, VY float64
	Age    int
	MaxAge int
	Radius float64
}

// Emit spawns friction particles along the player's trailing edge: the
// bottom edge with gravity down, the top edge when inverted. Positions are
// converted to world space so particles stay behind as the camera moves.
func Emit(p Player, gravitySign, cameraX float64, cfg config.ParticleConfig, rng Rand) []Particle {
	edgeY := p.Y + p.Height
	if gravitySign < 0 {
		edgeY = p.Y
	}

	out := make([]Particle, 0, particlesPerEmit)
	for range particlesPerEmit {
		out = append(out, Particle{
			X:      cameraX + p.X + rng.Float64()*p.Width,
			Y:      edgeY,
			VX:     -rng.Float64() * cfg.SpeedX,
			VY:     -gravitySign * rng.Float64() * cfg.SpeedY,
			MaxAge: cfg.MaxAge,
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		})
	}
	return out
}

// TickParticles moves and ages particles, dropping those that reach their
// maximum age. The slice is filtered in place; survivor order is kept.
func TickParticles(ps []Particle) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Age++
		if p.Age >= p.MaxAge {
			continue
		}
		alive = append(alive, p)
	}
	return alive
}
