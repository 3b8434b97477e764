package geometry

import "math"

// Rect represents an axis-aligned rectangular area.
type Rect struct {
	Min, Max Point
}

// NewRect builds a rect from position and size, normalizing negative sizes.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}.Normalize()
}

// Normalize returns the rect with Min and Max swapped into canonical order.
func (r Rect) Normalize() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the width of the rect.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rect.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains checks if a point is inside the rect, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X-Eps && p.X <= r.Max.X+Eps &&
		p.Y >= r.Min.Y-Eps && p.Y <= r.Max.Y+Eps
}

// ContainsInterior checks if a point is strictly inside the rect. Points on
// the boundary are not interior.
func (r Rect) ContainsInterior(p Point) bool {
	return p.X > r.Min.X+Eps && p.X < r.Max.X-Eps &&
		p.Y > r.Min.Y+Eps && p.Y < r.Max.Y-Eps
}

// Intersects checks if two rects overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X-Eps && r.Max.X > o.Min.X+Eps &&
		r.Min.Y < o.Max.Y-Eps && r.Max.Y > o.Min.Y+Eps
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// ExtendTo returns r grown just enough to contain p.
func (r Rect) ExtendTo(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Inflate returns r grown outward by the given amount on every side.
// Negative amounts shrink the rect but never past its center.
func (r Rect) Inflate(amount float64) Rect {
	out := Rect{
		Min: Point{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: Point{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
	c := r.Center()
	if out.Min.X > c.X {
		out.Min.X = c.X
	}
	if out.Max.X < c.X {
		out.Max.X = c.X
	}
	if out.Min.Y > c.Y {
		out.Min.Y = c.Y
	}
	if out.Max.Y < c.Y {
		out.Max.Y = c.Y
	}
	return out
}

// InflateSide returns r grown outward by the given amount on the side the
// heading points at.
func (r Rect) InflateSide(h Heading, amount float64) Rect {
	switch h {
	case North:
		r.Min.Y -= amount
	case East:
		r.Max.X += amount
	case South:
		r.Max.Y += amount
	case West:
		r.Min.X -= amount
	}
	return r
}

// SegmentCrossesInterior checks if an axis-aligned segment passes through
// the rect's interior. Segments along the boundary do not cross.
func (r Rect) SegmentCrossesInterior(a, b Point) bool {
	if math.Abs(a.Y-b.Y) < Eps {
		y := a.Y
		if y <= r.Min.Y+Eps || y >= r.Max.Y-Eps {
			return false
		}
		minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
		return minX < r.Max.X-Eps && maxX > r.Min.X+Eps
	}
	if math.Abs(a.X-b.X) < Eps {
		x := a.X
		if x <= r.Min.X+Eps || x >= r.Max.X-Eps {
			return false
		}
		minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		return minY < r.Max.Y-Eps && maxY > r.Min.Y+Eps
	}
	// Diagonal segments never appear in finished routes; treat a diagonal
	// as crossing when either endpoint is interior.
	return r.ContainsInterior(a) || r.ContainsInterior(b)
}

// HeadingForPoint classifies which side of the rect a point lies on. Space
// around the rect is partitioned into four triangular zones radiating from
// the center through the corners; the zone containing the point names the
// heading. Points near the center default to East for determinism.
func (r Rect) HeadingForPoint(p Point) Heading {
	c := r.Center()
	hw := math.Max(r.Width()/2, Eps)
	hh := math.Max(r.Height()/2, Eps)
	dx := (p.X - c.X) / hw
	dy := (p.Y - c.Y) / hh
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return East
		}
		return West
	}
	if dy > 0 {
		return South
	}
	return North
}

// NearestBoundaryPoint returns the point on the rect's boundary closest
// to p.
func (r Rect) NearestBoundaryPoint(p Point) Point {
	clamped := Point{
		X: Clamp(p.X, r.Min.X, r.Max.X),
		Y: Clamp(p.Y, r.Min.Y, r.Max.Y),
	}
	if !r.ContainsInterior(p) {
		return clamped
	}
	// Inside the rect: push out through the nearest side.
	dLeft := p.X - r.Min.X
	dRight := r.Max.X - p.X
	dTop := p.Y - r.Min.Y
	dBottom := r.Max.Y - p.Y
	min := math.Min(math.Min(dLeft, dRight), math.Min(dTop, dBottom))
	switch min {
	case dLeft:
		return Point{X: r.Min.X, Y: p.Y}
	case dRight:
		return Point{X: r.Max.X, Y: p.Y}
	case dTop:
		return Point{X: p.X, Y: r.Min.Y}
	default:
		return Point{X: p.X, Y: r.Max.Y}
	}
}

// RayBoundaryPoint casts a ray from origin along the heading and returns
// the first intersection with the rect's boundary. The second return is
// false when the ray misses the rect entirely.
func (r Rect) RayBoundaryPoint(origin Point, h Heading) (Point, bool) {
	switch h {
	case East:
		if origin.Y < r.Min.Y-Eps || origin.Y > r.Max.Y+Eps || origin.X > r.Max.X+Eps {
			return Point{}, false
		}
		if origin.X < r.Min.X {
			return Point{X: r.Min.X, Y: origin.Y}, true
		}
		return Point{X: r.Max.X, Y: origin.Y}, true
	case West:
		if origin.Y < r.Min.Y-Eps || origin.Y > r.Max.Y+Eps || origin.X < r.Min.X-Eps {
			return Point{}, false
		}
		if origin.X > r.Max.X {
			return Point{X: r.Max.X, Y: origin.Y}, true
		}
		return Point{X: r.Min.X, Y: origin.Y}, true
	case South:
		if origin.X < r.Min.X-Eps || origin.X > r.Max.X+Eps || origin.Y > r.Max.Y+Eps {
			return Point{}, false
		}
		if origin.Y < r.Min.Y {
			return Point{X: origin.X, Y: r.Min.Y}, true
		}
		return Point{X: origin.X, Y: r.Max.Y}, true
	case North:
		if origin.X < r.Min.X-Eps || origin.X > r.Max.X+Eps || origin.Y < r.Min.Y-Eps {
			return Point{}, false
		}
		if origin.Y > r.Max.Y {
			return Point{X: origin.X, Y: r.Max.Y}, true
		}
		return Point{X: origin.X, Y: r.Min.Y}, true
	}
	return Point{}, false
}
