package route

import "elbow/geometry"

// DirectRoute returns the 2-point straight route between the resolved
// endpoints when one exists: the endpoints must be axis-aligned, the
// segment must travel along each bound endpoint's required heading, and
// it must not cut through either bound shape. The second return is false
// when no direct route is possible and grid routing should run.
func DirectRoute(start, end ResolvedEndpoint, layout Layout) ([]geometry.Point, bool) {
	if start.Pos.Eq(end.Pos) {
		return nil, false
	}
	if !geometry.IsOrthogonal(start.Pos, end.Pos) {
		return nil, false
	}

	dir := geometry.SegmentHeading(start.Pos, end.Pos)
	if start.Bound && dir != start.Heading {
		return nil, false
	}
	if end.Bound && dir != end.Heading.Opposite() {
		return nil, false
	}

	if layout.crossesShape(start.Pos, end.Pos, nil) {
		return nil, false
	}

	return []geometry.Point{start.Pos, end.Pos}, true
}
