package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerMark   = '◆'
	SpikeTopChar = '▲'
	SpikeChar    = '█'
	PortalChar   = '║'
	ParticleChar = '·'
	GroundChar   = '═'
	CeilingChar  = '─'
)

// viewport maps simulation pixels onto terminal cells.
type viewport struct {
	pxPerCol   float64
	pxPerRow   float64
	ceilingRow int
	groundRow  int
	ceilingY   float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	ppc := g.cfg.Render.PixelsPerColumn
	if ppc <= 0 {
		ppc = 20
	}

	// Row 0 is the HUD, the last row the help line.
	ceilingRow := 1
	groundRow := core.Max(dst.Height()-2, ceilingRow+2)
	span := g.cfg.World.GroundY - g.cfg.World.CeilingY
	if span <= 0 {
		span = 1
	}

	return viewport{
		pxPerCol:   ppc,
		pxPerRow:   span / float64(groundRow-ceilingRow),
		ceilingRow: ceilingRow,
		groundRow:  groundRow,
		ceilingY:   g.cfg.World.CeilingY,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.pxPerCol))
}

func (v viewport) row(y float64) int {
	return v.ceilingRow + int(math.Floor((y-v.ceilingY)/v.pxPerRow))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	vp := g.viewport(dst)

	dst.DrawHLine(0, vp.ceilingRow, dst.Width(), CeilingChar, core.ColorGray)
	dst.DrawHLine(0, vp.groundRow, dst.Width(), GroundChar, core.ColorGray)

	if snap.Phase != PhaseIdle {
		g.drawPortal(dst, vp, snap)
		// Cull against the buffer, which may be wider than the logical view.
		for _, o := range g.sim.VisibleObstacles(float64(dst.Width()) * vp.pxPerCol) {
			g.drawSpike(dst, vp, o, snap.CameraX)
		}
		for _, p := range snap.Particles {
			dst.SetColor(vp.col(p.X-snap.CameraX), vp.row(p.Y), ParticleChar, core.ColorGray)
		}
	}
	g.drawPlayer(dst, vp, snap.Player)
	g.drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseIdle:
		g.drawCenteredMessage(dst, "SPIKE RUNNER", "Press Space to start")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == PhaseEnded && snap.Outcome == core.OutcomeComplete:
		g.drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Progress: %d%%  |  Press R to play again", snap.FinalScore))
	case snap.Phase == PhaseEnded:
		g.drawCenteredMessage(dst, "CRASHED", fmt.Sprintf("Progress: %d%%  |  Press R to restart", snap.FinalScore))
	}
}

// drawSpike fills the cells whose centers fall inside the spike triangle,
// always marking the apex column so narrow spikes stay visible.
func (g *Game) drawSpike(dst *core.Screen, vp viewport, o Obstacle, cameraX float64) {
	w := g.cfg.World
	sx := o.X - cameraX
	tri := spikeTriangle(sx, o, w.GroundY, w.CeilingY, g.sim.Player().GravitySign)
	b := tri.Bounds()

	for c := vp.col(b.X); c <= vp.col(b.Right()); c++ {
		for r := vp.row(b.Y); r <= vp.row(b.Bottom()); r++ {
			center := core.Vec{
				X: (float64(c) + 0.5) * vp.pxPerCol,
				Y: vp.ceilingY + (float64(r-vp.ceilingRow)+0.5)*vp.pxPerRow,
			}
			if tri.Contains(center) {
				dst.SetColor(c, r, SpikeChar, core.ColorRed)
			}
		}
	}

	dst.SetColor(vp.col(tri.C.X), vp.row(tri.C.Y), SpikeTopChar, core.ColorBrightRed)
}

func (g *Game) drawPortal(dst *core.Screen, vp viewport, snap Snapshot) {
	left := vp.col(snap.Goal.X - snap.CameraX)
	right := vp.col(snap.Goal.Right() - snap.CameraX)
	if right < 0 || left >= dst.Width() {
		return
	}
	for c := left; c <= right; c++ {
		dst.DrawVLine(c, vp.ceilingRow+1, vp.groundRow-vp.ceilingRow-1, PortalChar, core.ColorMagenta)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport, p Player) {
	left, top := vp.col(p.X), vp.row(p.Y)
	right := core.Max(vp.col(p.X+p.Width)-1, left)
	bottom := core.Max(vp.row(p.Y+p.Height)-1, top)

	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			dst.SetColor(c, r, PlayerChar, core.ColorCyan)
		}
	}

	// A marker walks the corners, one step per quarter turn.
	corners := [4][2]int{{right, top}, {right, bottom}, {left, bottom}, {left, top}}
	turn := int(math.Floor(p.Rotation/(math.Pi/2))) % 4
	if turn < 0 {
		turn += 4
	}
	dst.SetColor(corners[turn][0], corners[turn][1], PlayerMark, core.ColorBrightYellow)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Progress: %3d%%  Deaths: %d  Best: %d%% ", int(snap.Progress), snap.Deaths, snap.Record)
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)

	barW := dst.Width() - len(hud) - 6
	if barW < 10 {
		return
	}
	filled := int(float64(barW) * snap.Progress / 100)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barW-filled) + "]"
	dst.DrawTextColor(len(hud)+3, 0, bar, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
