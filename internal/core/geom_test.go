package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInside(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"fits", NewRect(10, 2, 62, 20), true},
		{"exact", NewRect(0, 0, 80, 24), true},
		{"too tall", NewRect(0, 0, 62, 34), false},
		{"negative origin", NewRect(-1, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.Inside(tc.r); got != tc.expected {
				t.Errorf("Inside(%+v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 2, 80, 22).Centered(20, 6)

	if r.X != 30 || r.Y != 10 || r.W != 20 || r.H != 6 {
		t.Errorf("Centered() = %+v, expected {30 10 20 6}", r)
	}
}
