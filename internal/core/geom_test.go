package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxOverlapsX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping spans",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 100, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint spans",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained span",
			a:        NewBox(0, 0, 80, 12),
			b:        NewBox(34, 0, 12, 12),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.OverlapsX(tc.a); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(160, 580, 80, 12)

	if b.Right() != 240 {
		t.Errorf("Right() = %f, expected 240", b.Right())
	}
	if b.Bottom() != 592 {
		t.Errorf("Bottom() = %f, expected 592", b.Bottom())
	}
	if b.CenterX() != 200 {
		t.Errorf("CenterX() = %f, expected 200", b.CenterX())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{326, 0, 320, 320},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-4) != -1 {
		t.Error("Sign(-4) should be -1")
	}
	if Sign(0) != 0 {
		t.Error("Sign(0) should be 0")
	}
	if Sign(0.01) != 1 {
		t.Error("Sign(0.01) should be 1")
	}
}

func TestActionIsPaddle(t *testing.T) {
	paddle := []Action{ActionTopLeft, ActionTopRight, ActionBottomLeft, ActionBottomRight}
	for _, a := range paddle {
		if !a.IsPaddle() {
			t.Errorf("%s should be a paddle action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionReset, ActionPause, ActionQuit} {
		if a.IsPaddle() {
			t.Errorf("%s should not be a paddle action", a)
		}
	}
}
