package edit

import (
	"elbow/geometry"
	"elbow/route"
)

// Mode identifies which edit strategy produced a result.
type Mode int

const (
	// ModeRouteFresh discards history and re-routes end to end.
	ModeRouteFresh Mode = iota
	// ModeReleaseFixed re-routes the span that a released pin bracketed.
	ModeReleaseFixed
	// ModeDragEndpoints re-routes only the span between a dragged
	// endpoint and its nearest pinned segment.
	ModeDragEndpoints
	// ModeApplyFixed re-imposes pinned coordinates onto the points.
	ModeApplyFixed
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeRouteFresh:
		return "routeFresh"
	case ModeReleaseFixed:
		return "releaseFixedSegments"
	case ModeDragEndpoints:
		return "dragEndpoints"
	case ModeApplyFixed:
		return "applyFixedSegments"
	default:
		return "unknown"
	}
}

// Request describes one edit: the previous path state owned by the host
// plus whatever changed. Points and Fixed are full replacements when
// non-nil; bindings reflect the endpoints' current attachment.
type Request struct {
	PrevPoints []geometry.Point
	PrevFixed  []FixedSegment
	// Points is the updated point list, or nil when points are unchanged.
	Points []geometry.Point
	// Fixed is the updated pinned-segment list, or nil when unchanged. A
	// shorter list than PrevFixed requests a release.
	Fixed        *[]FixedSegment
	StartBinding *route.BindingRef
	EndBinding   *route.BindingRef
}

// Result is the outcome of one edit call: the new points, the surviving
// pinned segments (nil when none), and the mode that produced them.
type Result struct {
	Points []geometry.Point
	Fixed  []FixedSegment
	Mode   Mode
}

// ComputeEdit recomputes the connector after an edit. Exactly one mode
// runs per call; modes that fail validation fall back to a full fresh
// route rather than returning a partially updated path. The only error
// returned is a ContractError for non-finite input.
func ComputeEdit(req Request, cfg route.Config) (Result, error) {
	cfg = cfg.Normalized()
	for _, p := range req.Points {
		if err := route.CheckPoint("points", p); err != nil {
			return Result{}, err
		}
	}
	for _, p := range req.PrevPoints {
		if err := route.CheckPoint("previousPoints", p); err != nil {
			return Result{}, err
		}
	}

	prevFixed := Sanitize(req.PrevFixed, req.PrevPoints, cfg)

	points := req.PrevPoints
	if req.Points != nil {
		points = req.Points
	}
	points = clonePoints(points)

	fixed := prevFixed
	fixedChanged := false
	release := false
	if req.Fixed != nil {
		fixed = Sanitize(*req.Fixed, points, cfg)
		release = len(fixed) < len(prevFixed)
		fixedChanged = !equalFixed(fixed, prevFixed)
	}
	pointsChanged := req.Points != nil && !equalPoints(req.Points, req.PrevPoints)

	switch {
	case len(fixed) == 0 && len(prevFixed) == 0:
		return freshRoute(req, points, nil, cfg, ModeRouteFresh)
	case release:
		return releaseFixed(req, prevFixed, fixed, cfg)
	case pointsChanged && !fixedChanged:
		return dragEndpoints(req, points, fixed, cfg)
	default:
		return applyFixed(req, points, fixed, cfg)
	}
}

// freshRoute discards the previous path and routes end to end. Surviving
// pinned segments, when present, are re-imposed onto the fresh route.
func freshRoute(req Request, points []geometry.Point, fixed []FixedSegment, cfg route.Config, mode Mode) (Result, error) {
	start, end := pathEndpoints(points, req.PrevPoints)
	rp, err := route.Route(route.Request{
		Start:        start,
		End:          end,
		StartBinding: req.StartBinding,
		EndBinding:   req.EndBinding,
	}, cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Points: rp.Points, Mode: mode}
	if len(fixed) > 0 {
		res.Points, res.Fixed = imposeFixed(rp.Points, Reindex(fixed, rp.Points, cfg), cfg)
		if len(res.Fixed) == 0 {
			res.Fixed = nil
		}
	}
	return res, nil
}

// applyFixed re-imposes each pinned segment's coordinate onto the current
// points, repairs the geometry, and re-checks perpendicular departure at
// bound endpoints.
func applyFixed(req Request, points []geometry.Point, fixed []FixedSegment, cfg route.Config) (Result, error) {
	pts, fx := imposeFixed(points, fixed, cfg)
	pts, fx = enforcePerpendicular(pts, fx, req.StartBinding, req.EndBinding, cfg)
	if route.ValidatePath(pts) != nil {
		return freshRoute(req, points, fixed, cfg, ModeRouteFresh)
	}
	return Result{Points: pts, Fixed: fx, Mode: ModeApplyFixed}, nil
}

// imposeFixed writes each pinned segment's coordinate back onto the
// points at its index, cleans up the resulting geometry, and re-matches
// the pins against the cleaned path.
func imposeFixed(points []geometry.Point, fixed []FixedSegment, cfg route.Config) ([]geometry.Point, []FixedSegment) {
	pts := clonePoints(points)
	for _, seg := range fixed {
		if seg.Index < 1 || seg.Index >= len(pts) {
			continue
		}
		if seg.Horizontal() {
			pts[seg.Index-1].Y = seg.coord()
			pts[seg.Index].Y = seg.coord()
		} else {
			pts[seg.Index-1].X = seg.coord()
			pts[seg.Index].X = seg.coord()
		}
	}
	pts = route.CleanPath(pts, cfg)
	return pts, Reindex(fixed, pts, cfg)
}

// releaseFixed re-routes only the span bracketed by the fixed segments
// surrounding the released one(s), keeping all other points untouched.
func releaseFixed(req Request, prevFixed, remaining []FixedSegment, cfg route.Config) (Result, error) {
	points := clonePoints(req.PrevPoints)
	if len(points) < 2 {
		return freshRoute(req, points, remaining, cfg, ModeRouteFresh)
	}

	kept := make(map[int]bool, len(remaining))
	for _, seg := range remaining {
		kept[seg.Index] = true
	}
	removedMin, removedMax := -1, -1
	for _, seg := range prevFixed {
		if kept[seg.Index] {
			continue
		}
		if removedMin < 0 || seg.Index < removedMin {
			removedMin = seg.Index
		}
		if seg.Index > removedMax {
			removedMax = seg.Index
		}
	}
	if removedMin < 0 {
		return applyFixed(req, points, remaining, cfg)
	}

	// Bracket the removed range with the nearest surviving pins, or the
	// path ends.
	left, right := 0, len(points)-1
	for _, seg := range remaining {
		if seg.Index < removedMin && seg.Index > left {
			left = seg.Index
		}
		if seg.Index > removedMax && seg.Index-1 < right {
			right = seg.Index - 1
		}
	}

	var startBinding, endBinding *route.BindingRef
	if left == 0 {
		startBinding = req.StartBinding
	}
	if right == len(points)-1 {
		endBinding = req.EndBinding
	}

	extraXs, extraYs := pinnedCoords(remaining)
	startRes := route.ResolveEndpoint(points[left], startBinding, points[right], cfg)
	endRes := route.ResolveEndpoint(points[right], endBinding, points[left], cfg)
	span := route.RouteEndpoints(startRes, endRes, cfg, extraXs, extraYs).Points
	if len(span) < 2 {
		return freshRoute(req, points, remaining, cfg, ModeRouteFresh)
	}

	newPoints := make([]geometry.Point, 0, left+len(span)+len(points)-right-1)
	newPoints = append(newPoints, points[:left]...)
	newPoints = append(newPoints, span...)
	newPoints = append(newPoints, points[right+1:]...)
	rightJunction := left + len(span) - 1
	before := len(newPoints)
	newPoints = mergeJunction(newPoints, left)
	rightJunction -= before - len(newPoints)
	newPoints = mergeJunction(newPoints, rightJunction)

	fx := Reindex(remaining, newPoints, cfg)
	if route.ValidatePath(newPoints) != nil || len(fx) != len(remaining) {
		return freshRoute(req, points, remaining, cfg, ModeRouteFresh)
	}
	if len(fx) == 0 {
		fx = nil
	}
	return Result{Points: newPoints, Fixed: fx, Mode: ModeReleaseFixed}, nil
}

// dragEndpoints handles point-list updates with unchanged pins. One-sided
// endpoint drags re-route locally around the nearest pinned anchor;
// anything broader reverts to a fresh route plus re-applied pins.
func dragEndpoints(req Request, points []geometry.Point, fixed []FixedSegment, cfg route.Config) (Result, error) {
	prev := req.PrevPoints
	if len(prev) < 2 || len(points) < 2 || len(points) != len(prev) {
		return freshRoute(req, points, fixed, cfg, ModeRouteFresh)
	}

	startMoved := !points[0].Eq(prev[0])
	endMoved := !points[len(points)-1].Eq(prev[len(prev)-1])
	interiorMoved := false
	for i := 1; i < len(points)-1; i++ {
		if !points[i].Eq(prev[i]) {
			interiorMoved = true
			break
		}
	}

	switch {
	case startMoved && endMoved:
		// Two-sided drags always take the full re-route.
		return freshRoute(req, points, fixed, cfg, ModeRouteFresh)
	case interiorMoved || (!startMoved && !endMoved):
		return applyFixed(req, points, fixed, cfg)
	case endMoved:
		if res, ok := dragOneSide(req, points, fixed, cfg, route.EndSide); ok {
			return res, nil
		}
	default:
		if res, ok := dragOneSide(req, points, fixed, cfg, route.StartSide); ok {
			return res, nil
		}
	}
	return freshRoute(req, points, fixed, cfg, ModeRouteFresh)
}

// pathEndpoints picks the raw start and end for a fresh route, falling
// back to the previous path when the point list is degenerate.
func pathEndpoints(points, prev []geometry.Point) (geometry.Point, geometry.Point) {
	if len(points) >= 2 {
		return points[0], points[len(points)-1]
	}
	if len(prev) >= 2 {
		return prev[0], prev[len(prev)-1]
	}
	if len(points) == 1 {
		return points[0], points[0]
	}
	return geometry.Point{}, geometry.Point{}
}

// pinnedCoords collects the pinned axis coordinates so a local re-route
// keeps them on its grid.
func pinnedCoords(segs []FixedSegment) (xs, ys []float64) {
	for _, seg := range segs {
		if seg.Horizontal() {
			ys = append(ys, seg.coord())
		} else {
			xs = append(xs, seg.coord())
		}
	}
	return xs, ys
}

// mergeJunction removes the point at idx when it has become collinear
// with its neighbors after a splice.
func mergeJunction(points []geometry.Point, idx int) []geometry.Point {
	if idx <= 0 || idx >= len(points)-1 {
		return points
	}
	if points[idx].Eq(points[idx-1]) || geometry.Collinear(points[idx-1], points[idx], points[idx+1]) {
		return append(points[:idx:idx], points[idx+1:]...)
	}
	return points
}

func clonePoints(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	copy(out, points)
	return out
}

func equalPoints(a, b []geometry.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

func equalFixed(a, b []FixedSegment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Index != b[i].Index ||
			!a[i].Start.Eq(b[i].Start) || !a[i].End.Eq(b[i].End) {
			return false
		}
	}
	return true
}
