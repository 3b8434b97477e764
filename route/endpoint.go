package route

import "elbow/geometry"

// ResolveEndpoint turns a raw point plus an optional binding into a
// ResolvedEndpoint. For bound endpoints the anchor is classified against
// the shape to derive the required heading and the position is pushed off
// the boundary by the arrowhead gap. Unbound endpoints take a best-guess
// heading toward the opposite endpoint. Resolution never fails; malformed
// bindings degrade to the unbound behavior.
func ResolveEndpoint(raw geometry.Point, binding *BindingRef, opposite geometry.Point, cfg Config) ResolvedEndpoint {
	cfg = cfg.Normalized()
	if binding == nil {
		return ResolvedEndpoint{
			Pos:     raw,
			Heading: geometry.SegmentHeading(raw, opposite),
		}
	}

	rect := binding.Bounds.Normalize()
	anchor := binding.Anchor
	if !rect.Contains(anchor) && !rect.ContainsInterior(anchor) {
		// Anchor drifted off the shape; pull it back to the boundary.
		anchor = rect.NearestBoundaryPoint(anchor)
	}

	heading := rect.HeadingForPoint(anchor)

	// Snap the anchor onto the boundary along the heading so the route
	// departs perpendicular to the shape edge.
	if snapped, ok := rect.RayBoundaryPoint(anchor, heading); ok {
		anchor = snapped
	} else {
		anchor = rect.NearestBoundaryPoint(anchor)
	}

	gap := binding.Gap
	if gap < 0 {
		gap = 0
	}
	if gap == 0 {
		gap = cfg.ArrowheadGap
	}

	return ResolvedEndpoint{
		Pos:     anchor.Add(heading.Vector().Scale(gap)),
		Heading: heading,
		Bound:   true,
		Rect:    rect,
		Gap:     gap,
	}
}

// resolveRequest resolves both sides of a routing request.
func resolveRequest(req Request, cfg Config) (start, end ResolvedEndpoint) {
	start = ResolveEndpoint(req.Start, req.StartBinding, req.End, cfg)
	end = ResolveEndpoint(req.End, req.EndBinding, req.Start, cfg)
	return start, end
}
