package route

import (
	"math"

	"elbow/geometry"
)

// Obstacle is the padded exclusion zone around one bound shape.
type Obstacle struct {
	// Rect is the inflated box the grid search keeps out of.
	Rect geometry.Rect
	// Shape is the bound element's original bounding box.
	Shape geometry.Rect
	Owner EndpointSide
}

// Layout is the obstacle arrangement for one routing call: up to two
// padded obstacles, the shared search bounds, and the exit (dongle) point
// where each bound endpoint leaves its obstacle.
type Layout struct {
	Obstacles   []Obstacle
	Bounds      geometry.Rect
	StartDongle geometry.Point
	EndDongle   geometry.Point
}

// BuildLayout inflates the bound shapes into obstacles, splits them when
// they overlap, and computes the search bounds and dongle points.
func BuildLayout(start, end ResolvedEndpoint, cfg Config) Layout {
	cfg = cfg.Normalized()

	var layout Layout
	var startObs, endObs *Obstacle

	if start.Bound {
		startObs = &Obstacle{
			Rect:  inflateForEndpoint(start, cfg),
			Shape: start.Rect,
			Owner: StartSide,
		}
	}
	if end.Bound {
		endObs = &Obstacle{
			Rect:  inflateForEndpoint(end, cfg),
			Shape: end.Rect,
			Owner: EndSide,
		}
	}

	if startObs != nil && endObs != nil && startObs.Rect.Intersects(endObs.Rect) {
		splitObstacles(startObs, endObs)
	}

	// Keep each obstacle off the opposite endpoint so the search always
	// has a reachable goal.
	if startObs != nil {
		shrinkPast(&startObs.Rect, end.Pos)
	}
	if endObs != nil {
		shrinkPast(&endObs.Rect, start.Pos)
	}

	bounds := geometry.Rect{Min: start.Pos, Max: start.Pos}.ExtendTo(end.Pos)
	if startObs != nil {
		bounds = bounds.Union(startObs.Rect)
		layout.Obstacles = append(layout.Obstacles, *startObs)
	}
	if endObs != nil {
		bounds = bounds.Union(endObs.Rect)
		layout.Obstacles = append(layout.Obstacles, *endObs)
	}
	layout.Bounds = bounds.Inflate(cfg.BasePadding)

	layout.StartDongle = donglePoint(start, startObs)
	layout.EndDongle = donglePoint(end, endObs)
	return layout
}

// inflateForEndpoint pads the bound shape: base padding on every side,
// plus the arrowhead gap on the side the route departs from.
func inflateForEndpoint(ep ResolvedEndpoint, cfg Config) geometry.Rect {
	return ep.Rect.Inflate(cfg.BasePadding).InflateSide(ep.Heading, ep.Gap)
}

// splitObstacles shrinks two overlapping obstacles back to their own side
// of the midline between the bound shapes, so neither padded box swallows
// the other endpoint's exit.
func splitObstacles(a, b *Obstacle) {
	ca, cb := a.Shape.Center(), b.Shape.Center()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y

	if math.Abs(dx) >= math.Abs(dy) {
		// Split along a vertical line between the facing edges.
		left, right := a, b
		if dx < 0 {
			left, right = b, a
		}
		mid := (left.Shape.Max.X + right.Shape.Min.X) / 2
		left.Rect.Max.X = math.Min(left.Rect.Max.X, mid)
		right.Rect.Min.X = math.Max(right.Rect.Min.X, mid)
	} else {
		top, bottom := a, b
		if dy < 0 {
			top, bottom = b, a
		}
		mid := (top.Shape.Max.Y + bottom.Shape.Min.Y) / 2
		top.Rect.Max.Y = math.Min(top.Rect.Max.Y, mid)
		bottom.Rect.Min.Y = math.Max(bottom.Rect.Min.Y, mid)
	}
	a.Rect = a.Rect.Normalize()
	b.Rect = b.Rect.Normalize()
}

// shrinkPast pulls the nearest side of a rect back to p when p lies
// strictly inside it.
func shrinkPast(r *geometry.Rect, p geometry.Point) {
	if !r.ContainsInterior(p) {
		return
	}
	dLeft := p.X - r.Min.X
	dRight := r.Max.X - p.X
	dTop := p.Y - r.Min.Y
	dBottom := r.Max.Y - p.Y
	min := math.Min(math.Min(dLeft, dRight), math.Min(dTop, dBottom))
	switch min {
	case dLeft:
		r.Min.X = p.X
	case dRight:
		r.Max.X = p.X
	case dTop:
		r.Min.Y = p.Y
	default:
		r.Max.Y = p.Y
	}
}

// donglePoint projects a bound endpoint onto its obstacle boundary along
// the required heading. Unbound endpoints exit at their own position.
func donglePoint(ep ResolvedEndpoint, obs *Obstacle) geometry.Point {
	if obs == nil {
		return ep.Pos
	}
	if exit, ok := obs.Rect.RayBoundaryPoint(ep.Pos, ep.Heading); ok {
		return exit
	}
	return ep.Pos
}

// blocked reports whether an axis-aligned segment crosses any padded
// obstacle interior. The original shape is checked too: splitting and
// shrinking can pull a padded rect back inside its shape, and routes must
// never cut through the shape itself.
func (l Layout) blocked(a, b geometry.Point) bool {
	for _, obs := range l.Obstacles {
		if obs.Rect.SegmentCrossesInterior(a, b) || obs.Shape.SegmentCrossesInterior(a, b) {
			return true
		}
	}
	return false
}

// crossesShape reports whether an axis-aligned segment crosses a bound
// shape's interior, skipping shapes owned by an endpoint inside them.
func (l Layout) crossesShape(a, b geometry.Point, skip map[EndpointSide]bool) bool {
	for _, obs := range l.Obstacles {
		if skip[obs.Owner] {
			continue
		}
		if obs.Shape.SegmentCrossesInterior(a, b) {
			return true
		}
	}
	return false
}
