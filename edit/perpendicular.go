package edit

import (
	"elbow/geometry"
	"elbow/route"
)

// enforcePerpendicular guarantees that bound endpoints depart and arrive
// perpendicular to the bound shape's edge. The endpoint is snapped onto
// the boundary along its required heading; when the adjacent segment
// cannot be turned to match — typically because a pinned segment holds it
// on the wrong axis — a short transition dogleg is inserted between the
// endpoint and the rest of the path.
func enforcePerpendicular(points []geometry.Point, fixed []FixedSegment, startBinding, endBinding *route.BindingRef, cfg route.Config) ([]geometry.Point, []FixedSegment) {
	cfg = cfg.Normalized()
	if len(points) < 2 {
		return points, fixed
	}
	pts := clonePoints(points)

	if startBinding != nil {
		res := route.ResolveEndpoint(pts[0], startBinding, pts[len(pts)-1], cfg)
		pts[0] = res.Pos
		pts = alignTerminal(pts, res.Heading, cfg, false)
	}
	if endBinding != nil {
		res := route.ResolveEndpoint(pts[len(pts)-1], endBinding, pts[0], cfg)
		pts[len(pts)-1] = res.Pos
		pts = alignTerminal(pts, res.Heading, cfg, true)
	}

	pts = route.CleanPath(pts, cfg)
	return pts, Reindex(fixed, pts, cfg)
}

// alignTerminal fixes the terminal segment at one end of the path so it
// runs along the required heading. atEnd selects which end; the heading
// always points away from the bound shape.
func alignTerminal(pts []geometry.Point, heading geometry.Heading, cfg route.Config, atEnd bool) []geometry.Point {
	n := len(pts)
	var endpoint, neighbor geometry.Point
	if atEnd {
		endpoint, neighbor = pts[n-1], pts[n-2]
	} else {
		endpoint, neighbor = pts[0], pts[1]
	}

	// The segment at the endpoint must travel along the heading axis:
	// departing along it at the start, arriving against it at the end.
	dir := geometry.SegmentHeading(endpoint, neighbor)
	if dir == heading && geometry.IsOrthogonal(endpoint, neighbor) {
		return pts
	}

	// Step away from the shape along the heading, then turn toward the
	// rest of the path. The cleanup pass merges the corner away again
	// when the dogleg turns out collinear with the old segment.
	step := endpoint.Add(heading.Vector().Scale(cfg.BasePadding / 2))
	var corner geometry.Point
	if heading.IsHorizontal() {
		corner = geometry.Point{X: step.X, Y: neighbor.Y}
	} else {
		corner = geometry.Point{X: neighbor.X, Y: step.Y}
	}
	return insertAfterEndpoint(pts, []geometry.Point{step, corner}, atEnd)
}

// insertAfterEndpoint splices transition points next to the first or last
// path point.
func insertAfterEndpoint(pts []geometry.Point, inserted []geometry.Point, atEnd bool) []geometry.Point {
	out := make([]geometry.Point, 0, len(pts)+len(inserted))
	if atEnd {
		out = append(out, pts[:len(pts)-1]...)
		for i := len(inserted) - 1; i >= 0; i-- {
			out = append(out, inserted[i])
		}
		out = append(out, pts[len(pts)-1])
		return out
	}
	out = append(out, pts[0])
	out = append(out, inserted...)
	out = append(out, pts[1:]...)
	return out
}
