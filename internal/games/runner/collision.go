package runner

import "github.com/vovakirdan/spike-runner/internal/core"

// spikeTriangle builds the hazard triangle for an obstacle already translated
// to screen space. With gravity down the spike stands on the ground pointing
// up; inverted, it hangs from the ceiling pointing down.
func spikeTriangle(screenX float64, o Obstacle, groundY, ceilingY, gravitySign float64) core.Triangle {
	mid := screenX + o.Width/2
	if gravitySign > 0 {
		return core.Triangle{
			A: core.Vec{X: screenX, Y: groundY},
			B: core.Vec{X: screenX + o.Width, Y: groundY},
			C: core.Vec{X: mid, Y: groundY - o.Height},
		}
	}
	return core.Triangle{
		A: core.Vec{X: screenX, Y: ceilingY},
		B: core.Vec{X: screenX + o.Width, Y: ceilingY},
		C: core.Vec{X: mid, Y: ceilingY + o.Height},
	}
}

// samplePoints returns the player points tested against a hazard: the
// leading edge in the gravity direction (both corners and center), the
// opposite edge (both corners and center), and the body center.
func samplePoints(p Player) [7]core.Vec {
	left, top, right, bottom := p.Bounds()
	midX := left + p.Width/2
	midY := top + p.Height/2
	return [7]core.Vec{
		{X: left, Y: bottom},
		{X: right, Y: bottom},
		{X: midX, Y: bottom},
		{X: left, Y: top},
		{X: right, Y: top},
		{X: midX, Y: top},
		{X: midX, Y: midY},
	}
}

// CheckHazard reports whether the player touches the obstacle this tick.
// The test is a point-sampling approximation: an edge that cuts through the
// player box without containing a sample point is not a hit.
func CheckHazard(p Player, o Obstacle, cameraX, groundY, ceilingY, gravitySign float64) bool {
	screenX := o.X - cameraX
	left, top, right, bottom := p.Bounds()

	if !core.IntervalsOverlap(left, right, screenX, screenX+o.Width) {
		return false
	}

	// Vertical reach of the spike
	spanTop, spanBottom := groundY-o.Height, groundY
	if gravitySign <= 0 {
		spanTop, spanBottom = ceilingY, ceilingY+o.Height
	}
	if bottom < spanTop || top > spanBottom {
		return false
	}

	tri := spikeTriangle(screenX, o, groundY, ceilingY, gravitySign)
	for _, pt := range samplePoints(p) {
		if tri.Contains(pt) {
			return true
		}
	}
	return false
}

// CheckGoal reports whether the player's screen-space horizontal extent
// overlaps the portal. Vertical position is ignored.
func CheckGoal(p Player, g Goal, cameraX float64) bool {
	screenX := g.X - cameraX
	return core.IntervalsOverlap(p.X, p.X+p.Width, screenX, screenX+g.Width)
}
