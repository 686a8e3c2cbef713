package runner

// Player is the controlled box. X is fixed in screen space; Y is world space
// with y growing downward.
type Player struct {
	X, Y        float64
	VY          float64 // Vertical velocity, positive = down
	Width       float64
	Height      float64
	OnGround    bool    // Resting on the surface gravity pulls toward
	Rotation    float64 // Accumulated radians, one step per jump
	GravitySign float64 // +1 down, -1 up
}

// Bounds returns the player's screen-space box.
func (p Player) Bounds() (left, top, right, bottom float64) {
	return p.X, p.Y, p.X + p.Width, p.Y + p.Height
}

// Integrate advances the player's velocity and position by one tick.
//
// Gravity applies every tick, even on the ground; the clamp zeroes it again.
// A non-zero cap limits speed only in its own direction. Surfaces are
// resolved after the move, not swept, so a fast player can pass through thin
// hazards between ticks.
func Integrate(p *Player, gravitySign, gravityMultiplier, groundY, ceilingY, capDown, capUp float64) {
	p.VY += gravitySign * gravityMultiplier

	if capDown != 0 && p.VY > capDown {
		p.VY = capDown
	}
	if capUp != 0 && p.VY < -capUp {
		p.VY = -capUp
	}

	p.Y += p.VY

	floor := groundY - p.Height
	if gravitySign > 0 {
		if p.Y >= floor {
			p.Y = floor
			p.VY = 0
			p.OnGround = true
			return
		}
		p.OnGround = false
		// The ceiling still bounds an upward launch.
		if p.Y < ceilingY {
			p.Y = ceilingY
			p.VY = 0
		}
		return
	}

	if p.Y <= ceilingY {
		p.Y = ceilingY
		p.VY = 0
		p.OnGround = true
		return
	}
	p.OnGround = false
	if p.Y > floor {
		p.Y = floor
		p.VY = 0
	}
}
