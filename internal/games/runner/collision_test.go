package runner

import "testing"

func testSpike() Obstacle {
	return Obstacle{Kind: KindSpike, X: 1000, Width: 55, Height: 60}
}

func TestCheckHazard(t *testing.T) {
	tests := []struct {
		name     string
		playerY  float64
		cameraX  float64
		expected bool
	}{
		// Spike at screen x 310..365, apex (337.5, 820).
		{"bottom center inside spike", 790, 690, true},
		{"standing on base edge", 800, 690, true},
		{"clear above the spike", 700, 690, false},
		{"spike far ahead", 800, 0, false},
		{"spike already passed", 800, 1000, false},
		// Spike starts exactly at the player's right edge.
		{"touching horizontally", 800, 620, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := groundedPlayer()
			p.Y = tc.playerY
			got := CheckHazard(p, testSpike(), tc.cameraX, testGround, testCeiling, 1)
			if got != tc.expected {
				t.Errorf("CheckHazard() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCheckHazardInvertedGravity(t *testing.T) {
	p := Player{X: 300, Y: 205, Width: 80, Height: 80, GravitySign: -1}

	if !CheckHazard(p, testSpike(), 690, testGround, testCeiling, -1) {
		t.Error("ceiling spike should hit a player against the ceiling")
	}
	if CheckHazard(p, testSpike(), 690, testGround, testCeiling, 1) {
		t.Error("ground spike should not reach a player at the ceiling")
	}
}

func TestCheckHazardPointSamplingGap(t *testing.T) {
	// A narrow spike between the sampled columns (300, 340, 380) overlaps
	// the player box without containing any sample point.
	o := Obstacle{Kind: KindSpike, X: 345, Width: 30, Height: 60}
	p := groundedPlayer()
	p.Y = 790

	if CheckHazard(p, o, 0, testGround, testCeiling, 1) {
		t.Error("spike between sample points should not register")
	}

	// Widening it to cover the right corner does.
	o.Width = 55
	if !CheckHazard(p, o, 0, testGround, testCeiling, 1) {
		t.Error("spike covering the bottom-right corner should register")
	}
}

func TestSamplePoints(t *testing.T) {
	pts := samplePoints(groundedPlayer())
	if len(pts) != 7 {
		t.Fatalf("expected 7 sample points, got %d", len(pts))
	}
	if pts[0].X != 300 || pts[0].Y != 880 {
		t.Errorf("first point = %v, expected bottom-left (300, 880)", pts[0])
	}
	if pts[6].X != 340 || pts[6].Y != 840 {
		t.Errorf("last point = %v, expected center (340, 840)", pts[6])
	}
}

func TestCheckGoal(t *testing.T) {
	g := Goal{X: 1000, Width: 120}

	tests := []struct {
		name     string
		playerY  float64
		cameraX  float64
		expected bool
	}{
		{"overlapping", 800, 700, true},
		{"overlapping while airborne", 250, 700, true},
		{"not reached", 800, 0, false},
		{"touching edge", 800, 620, false},
		{"just inside", 800, 621, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := groundedPlayer()
			p.Y = tc.playerY
			if got := CheckGoal(p, g, tc.cameraX); got != tc.expected {
				t.Errorf("CheckGoal() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
