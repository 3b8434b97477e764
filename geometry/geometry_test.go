package geometry

import (
	"testing"
)

func TestSegmentHeading(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Heading
	}{
		{"east", Point{0, 0}, Point{10, 0}, East},
		{"west", Point{10, 0}, Point{0, 0}, West},
		{"south", Point{0, 0}, Point{0, 10}, South},
		{"north", Point{0, 10}, Point{0, 0}, North},
		{"coincident", Point{5, 5}, Point{5, 5}, NoHeading},
		{"diagonal dominant x", Point{0, 0}, Point{10, 4}, East},
		{"diagonal dominant y", Point{0, 0}, Point{4, 10}, South},
		{"diagonal tie prefers x", Point{0, 0}, Point{-10, 10}, West},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentHeading(tt.a, tt.b); got != tt.want {
				t.Errorf("SegmentHeading(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHeadingOppositeAndVector(t *testing.T) {
	for _, h := range []Heading{North, East, South, West} {
		if h.Opposite().Opposite() != h {
			t.Errorf("%v: double Opposite not identity", h)
		}
		v := h.Vector().Add(h.Opposite().Vector())
		if v != (Point{}) {
			t.Errorf("%v: vectors do not cancel, got %v", h, v)
		}
	}
	if NoHeading.Opposite() != NoHeading {
		t.Error("NoHeading.Opposite() should stay NoHeading")
	}
	if NoHeading.Vector() != (Point{}) {
		t.Error("NoHeading.Vector() should be zero")
	}
}

func TestIsOrthogonalAndCollinear(t *testing.T) {
	if !IsOrthogonal(Point{0, 0}, Point{10, 0}) {
		t.Error("horizontal segment should be orthogonal")
	}
	if !IsOrthogonal(Point{3, 1}, Point{3, 9}) {
		t.Error("vertical segment should be orthogonal")
	}
	if IsOrthogonal(Point{0, 0}, Point{1, 1}) {
		t.Error("diagonal segment should not be orthogonal")
	}
	if !Collinear(Point{0, 5}, Point{3, 5}, Point{9, 5}) {
		t.Error("points on one horizontal line should be collinear")
	}
	if Collinear(Point{0, 0}, Point{3, 0}, Point{3, 5}) {
		t.Error("corner points should not be collinear")
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(Point{1, 2}, Point{4, -2}); got != 7 {
		t.Errorf("Manhattan = %v, want 7", got)
	}
}
