package core

import "testing"

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        AABB{Center: Vec2{0, 0}, W: 50, H: 50},
			b:        AABB{Center: Vec2{20, 20}, W: 50, H: 50},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        AABB{Center: Vec2{0, 0}, W: 50, H: 50},
			b:        AABB{Center: Vec2{100, 0}, W: 50, H: 50},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        AABB{Center: Vec2{0, 0}, W: 50, H: 50},
			b:        AABB{Center: Vec2{0, 100}, W: 50, H: 50},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        AABB{Center: Vec2{0, 0}, W: 50, H: 50},
			b:        AABB{Center: Vec2{50, 0}, W: 50, H: 50},
			expected: false,
		},
		{
			name:     "contained box",
			a:        AABB{Center: Vec2{0, 0}, W: 200, H: 200},
			b:        AABB{Center: Vec2{10, -10}, W: 20, H: 20},
			expected: true,
		},
		{
			name:     "player resting exactly on platform top",
			a:        AABB{Center: Vec2{0, 135}, W: 50, H: 50},
			b:        AABB{Center: Vec2{0, 100}, W: 200, H: 20},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBEdges(t *testing.T) {
	b := AABB{Center: Vec2{0, 100}, W: 200, H: 20}

	if b.Left() != -100 {
		t.Errorf("Left() = %f, expected -100", b.Left())
	}
	if b.Right() != 100 {
		t.Errorf("Right() = %f, expected 100", b.Right())
	}
	if b.Bottom() != 90 {
		t.Errorf("Bottom() = %f, expected 90", b.Bottom())
	}
	if b.Top() != 110 {
		t.Errorf("Top() = %f, expected 110", b.Top())
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist() (reversed) = %f, expected 5", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
