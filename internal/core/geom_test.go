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

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 50, 26)

	tests := []struct {
		w, h     int
		expected bool
	}{
		{50, 26, true},
		{10, 10, true},
		{51, 26, false},
		{50, 27, false},
	}

	for _, tc := range tests {
		if got := r.Fits(tc.w, tc.h); got != tc.expected {
			t.Errorf("Fits(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(2, 4, 20, 10)
	inner := outer.Centered(10, 4)

	if inner != NewRect(7, 7, 10, 4) {
		t.Errorf("Centered(10, 4) = %+v, expected {7 7 10 4}", inner)
	}
}
