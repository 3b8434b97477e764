// Package geometry contains the primitive types used throughout the elbow
// routing engine: world-space points, axis-aligned rectangles and cardinal
// headings.
package geometry

import "math"

// Eps is the tolerance used for coordinate comparisons. World coordinates
// are float64 and accumulate rounding through padding and midpoint math.
const Eps = 1e-9

// Point represents a 2D world-space coordinate.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Eq reports whether p and q coincide within Eps.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Eps && math.Abs(p.Y-q.Y) < Eps
}

// Manhattan returns the Manhattan distance between two points.
func Manhattan(a, b Point) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsOrthogonal reports whether the segment a-b is horizontal or vertical.
func IsOrthogonal(a, b Point) bool {
	return math.Abs(a.X-b.X) < Eps || math.Abs(a.Y-b.Y) < Eps
}

// Collinear reports whether three points lie on one horizontal or one
// vertical line.
func Collinear(a, b, c Point) bool {
	sameX := math.Abs(a.X-b.X) < Eps && math.Abs(b.X-c.X) < Eps
	sameY := math.Abs(a.Y-b.Y) < Eps && math.Abs(b.Y-c.Y) < Eps
	return sameX || sameY
}

// Heading represents a cardinal direction.
type Heading int

const (
	North Heading = iota
	East
	South
	West
	// NoHeading marks the absence of a direction constraint.
	NoHeading Heading = -1
)

// String returns the string representation of a Heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// Opposite returns the opposite heading.
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return h
	}
}

// Vector returns the unit vector for the heading. Y grows downward, so
// North is (0, -1).
func (h Heading) Vector() Point {
	switch h {
	case North:
		return Point{Y: -1}
	case East:
		return Point{X: 1}
	case South:
		return Point{Y: 1}
	case West:
		return Point{X: -1}
	default:
		return Point{}
	}
}

// IsHorizontal reports whether the heading runs along the X axis.
func (h Heading) IsHorizontal() bool {
	return h == East || h == West
}

// SegmentHeading returns the heading of the orthogonal segment a-b, or
// NoHeading when the points coincide. Diagonal segments resolve to their
// dominant axis.
func SegmentHeading(a, b Point) Heading {
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.Abs(dx) < Eps && math.Abs(dy) < Eps {
		return NoHeading
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return East
		}
		return West
	}
	if dy > 0 {
		return South
	}
	return North
}
