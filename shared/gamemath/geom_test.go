package gamemath

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		points   []Vec
		axis     Vec
		wantMin  float64
		wantMax  float64
	}{
		{"x axis", []Vec{{1, 5}, {3, -2}, {-4, 0}}, Vec{1, 0}, -4, 3},
		{"y axis", []Vec{{1, 5}, {3, -2}, {-4, 0}}, Vec{0, 1}, -2, 5},
		{"single point", []Vec{{2, 2}}, Vec{1, 0}, 2, 2},
		{"empty", nil, Vec{1, 0}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			min, max := Project(tc.points, tc.axis)
			if min != tc.wantMin || max != tc.wantMax {
				t.Fatalf("Project() = (%v, %v), want (%v, %v)", min, max, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	const eps = 0.001

	tests := []struct {
		name                     string
		min1, max1, min2, max2   float64
		want                     bool
	}{
		{"clear overlap", 0, 10, 5, 15, true},
		{"clear gap", 0, 10, 20, 30, false},
		{"contained", 0, 10, 2, 3, true},
		{"touching edges", 0, 10, 10, 20, true},
		// Both sides of the epsilon tolerance.
		{"gap just over epsilon", 0, 10, 10 + eps + 0.0005, 20, false},
		{"gap just under epsilon", 0, 10, 10 + eps - 0.0005, 20, true},
		{"reversed order", 20, 30, 0, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IntervalsOverlap(tc.min1, tc.max1, tc.min2, tc.max2, eps); got != tc.want {
				t.Fatalf("IntervalsOverlap(%v, %v, %v, %v) = %v, want %v",
					tc.min1, tc.max1, tc.min2, tc.max2, got, tc.want)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Vec
		want           bool
	}{
		{"crossing", Vec{0, 0}, Vec{10, 10}, Vec{0, 10}, Vec{10, 0}, true},
		{"parallel apart", Vec{0, 0}, Vec{10, 0}, Vec{0, 5}, Vec{10, 5}, false},
		{"collinear overlapping", Vec{0, 0}, Vec{10, 0}, Vec{5, 0}, Vec{15, 0}, true},
		{"collinear disjoint", Vec{0, 0}, Vec{4, 0}, Vec{5, 0}, Vec{10, 0}, false},
		{"touching at endpoint", Vec{0, 0}, Vec{5, 5}, Vec{5, 5}, Vec{10, 0}, true},
		{"T junction", Vec{0, 0}, Vec{10, 0}, Vec{5, -5}, Vec{5, 0}, true},
		{"near miss", Vec{0, 0}, Vec{10, 0}, Vec{5, -5}, Vec{5, -0.01}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentsIntersect(tc.a1, tc.a2, tc.b1, tc.b2); got != tc.want {
				t.Fatalf("SegmentsIntersect = %v, want %v", got, tc.want)
			}
			// Intersection is symmetric in the two segments.
			if got := SegmentsIntersect(tc.b1, tc.b2, tc.a1, tc.a2); got != tc.want {
				t.Fatalf("SegmentsIntersect (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyDamping(t *testing.T) {
	if got := ApplyDamping(10, 0.8, 0.1); got != 8 {
		t.Fatalf("ApplyDamping(10, 0.8) = %v, want 8", got)
	}
	if got := ApplyDamping(0.05, 0.8, 0.1); got != 0 {
		t.Fatalf("speed below rest threshold should snap to zero, got %v", got)
	}
	if got := ApplyDamping(-10, 0.8, 0.1); got != -8 {
		t.Fatalf("ApplyDamping(-10, 0.8) = %v, want -8", got)
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(12, 6); got != 6 {
		t.Fatalf("ClampSpeed(12, 6) = %v", got)
	}
	if got := ClampSpeed(-12, 6); got != -6 {
		t.Fatalf("ClampSpeed(-12, 6) = %v", got)
	}
	if got := ClampSpeed(3, 6); got != 3 {
		t.Fatalf("ClampSpeed(3, 6) = %v", got)
	}
}
