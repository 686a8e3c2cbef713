package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestTriangleContains(t *testing.T) {
	// Spike sitting on y=100, apex up at y=40.
	spike := Triangle{
		A: Vec{X: 0, Y: 100},
		B: Vec{X: 60, Y: 100},
		C: Vec{X: 30, Y: 40},
	}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"centroid", Vec{X: 30, Y: 80}, true},
		{"apex vertex", Vec{X: 30, Y: 40}, true},
		{"base vertex", Vec{X: 0, Y: 100}, true},
		{"on base edge", Vec{X: 45, Y: 100}, true},
		{"on slanted edge", Vec{X: 15, Y: 70}, true},
		{"just outside slanted edge", Vec{X: 14, Y: 70}, false},
		{"below base", Vec{X: 30, Y: 100.5}, false},
		{"above apex", Vec{X: 30, Y: 39}, false},
		{"far right", Vec{X: 200, Y: 90}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := spike.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
			// Winding must not matter.
			flipped := Triangle{A: spike.C, B: spike.B, C: spike.A}
			if got := flipped.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) with reversed winding = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{A: Vec{X: 10, Y: 50}, B: Vec{X: 40, Y: 50}, C: Vec{X: 25, Y: 5}}
	b := tri.Bounds()
	if b.X != 10 || b.Y != 5 || b.W != 30 || b.H != 45 {
		t.Errorf("Bounds() = %+v, expected {10 5 30 45}", b)
	}
}

func TestRectFIntersects(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 10}

	if !a.Intersects(RectF{X: 9.5, Y: 9.5, W: 1, H: 1}) {
		t.Error("expected fractional overlap to intersect")
	}
	if a.Intersects(RectF{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("touching edges should not intersect")
	}

	c := a.Center()
	if c.X != 5 || c.Y != 5 {
		t.Errorf("Center() = %v, expected (5, 5)", c)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		a0, a1, b0, b1 float64
		expected       bool
	}{
		{0, 10, 5, 15, true},
		{0, 10, 10, 20, false},
		{10, 20, 0, 10, false},
		{0, 100, 40, 50, true},
		{40, 50, 0, 100, true},
		{0, 10, 11, 12, false},
	}

	for _, tc := range tests {
		if got := IntervalsOverlap(tc.a0, tc.a1, tc.b0, tc.b1); got != tc.expected {
			t.Errorf("IntervalsOverlap(%v, %v, %v, %v) = %v, expected %v",
				tc.a0, tc.a1, tc.b0, tc.b1, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(150.5, 0, 100) != 100 {
		t.Error("ClampF should clamp to max")
	}
	if ClampF(-3, 0, 100) != 0 {
		t.Error("ClampF should clamp to min")
	}
	if ClampF(42.25, 0, 100) != 42.25 {
		t.Error("ClampF should keep in-range values")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max int mismatch")
	}
	if MinF(2.5, -1) != -1 || MaxF(2.5, -1) != 2.5 {
		t.Error("MinF/MaxF mismatch")
	}
}
