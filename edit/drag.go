package edit

import (
	"elbow/geometry"
	"elbow/route"
)

// dragOneSide re-routes the span between a dragged endpoint and its
// nearest pinned segment, splicing the new span onto the untouched
// remainder. The anchor pin keeps its axis; its junction endpoint may
// slide along that axis. Returns false when the local edit cannot be
// applied cleanly, in which case the caller reverts to a fresh route.
func dragOneSide(req Request, points []geometry.Point, fixed []FixedSegment, cfg route.Config, side route.EndpointSide) (Result, bool) {
	prev := req.PrevPoints
	extraXs, extraYs := pinnedCoords(fixed)

	if side == route.EndSide {
		anchor := fixed[len(fixed)-1]
		junction := anchor.Index
		if junction >= len(prev)-1 {
			return Result{}, false
		}

		newEnd := points[len(points)-1]
		startRes := route.ResolveEndpoint(prev[junction], nil, newEnd, cfg)
		endRes := route.ResolveEndpoint(newEnd, req.EndBinding, prev[junction], cfg)
		span := route.RouteEndpoints(startRes, endRes, cfg, extraXs, extraYs).Points
		if len(span) < 2 || !span[0].Eq(prev[junction]) {
			return Result{}, false
		}

		// Points up to and including the anchor stay untouched.
		merged := make([]geometry.Point, 0, junction+len(span))
		merged = append(merged, prev[:junction]...)
		merged = append(merged, span...)
		merged = mergeJunction(merged, junction)

		fx := SyncToPoints(fixed, merged)
		if route.ValidatePath(merged) != nil || len(fx) != len(fixed) || !sameAxes(fx, fixed) {
			return Result{}, false
		}
		return Result{Points: merged, Fixed: fx, Mode: ModeDragEndpoints}, true
	}

	anchor := fixed[0]
	junction := anchor.Index - 1
	if junction < 1 {
		return Result{}, false
	}

	newStart := points[0]
	startRes := route.ResolveEndpoint(newStart, req.StartBinding, prev[junction], cfg)
	endRes := route.ResolveEndpoint(prev[junction], nil, newStart, cfg)
	span := route.RouteEndpoints(startRes, endRes, cfg, extraXs, extraYs).Points
	if len(span) < 2 || !span[len(span)-1].Eq(prev[junction]) {
		return Result{}, false
	}

	merged := make([]geometry.Point, 0, len(span)+len(prev)-junction-1)
	merged = append(merged, span...)
	merged = append(merged, prev[junction+1:]...)
	merged = mergeJunction(merged, len(span)-1)

	delta := len(merged) - len(prev)
	fx := SyncToPoints(shiftIndices(fixed, 0, delta), merged)
	if route.ValidatePath(merged) != nil || len(fx) != len(fixed) || !sameAxes(fx, fixed) {
		return Result{}, false
	}
	return Result{Points: merged, Fixed: fx, Mode: ModeDragEndpoints}, true
}

// sameAxes checks that every pin kept its axis across an edit.
func sameAxes(after, before []FixedSegment) bool {
	if len(after) != len(before) {
		return false
	}
	for i := range after {
		if after[i].Horizontal() != before[i].Horizontal() {
			return false
		}
	}
	return true
}
