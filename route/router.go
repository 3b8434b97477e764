package route

import "elbow/geometry"

// Route computes an orthogonal elbow connector for a request. Geometric
// edge cases degrade to deterministic fallback elbows; the only error
// returned is a ContractError for non-finite input.
func Route(req Request, cfg Config) (RoutedPath, error) {
	if err := CheckRequest(req); err != nil {
		return RoutedPath{}, err
	}
	cfg = cfg.Normalized()
	start, end := resolveRequest(req, cfg)
	return RouteEndpoints(start, end, cfg, nil, nil), nil
}

// RouteEndpoints routes between two already-resolved endpoints. The extra
// coordinate lists seed the grid with axes that must stay reachable, such
// as pinned segment coordinates during incremental edits.
func RouteEndpoints(start, end ResolvedEndpoint, cfg Config, extraXs, extraYs []float64) RoutedPath {
	cfg = cfg.Normalized()
	result := RoutedPath{Start: start, End: end}

	// Two loose endpoints close together: skip the machinery and return
	// the stable elbow straight away.
	if !start.Bound && !end.Bound && geometry.Manhattan(start.Pos, end.Pos) < cfg.BasePadding/4 {
		result.Points = finishPath(fallbackElbow(start, end), cfg, &result)
		return result
	}

	layout := BuildLayout(start, end, cfg)

	if pts, ok := DirectRoute(start, end, layout); ok {
		result.Points = finishPath(pts, cfg, &result)
		return result
	}

	if pts, ok := gridRoute(start, end, layout, cfg, extraXs, extraYs); ok {
		result.Points = finishPath(pts, cfg, &result)
		if ValidatePath(result.Points) == nil {
			return result
		}
		// Grid output failed validation; fall through to the elbow.
	}

	result.Status = StatusFallback
	result.Points = finishPath(fallbackElbow(start, end), cfg, &result)
	return result
}

// finishPath post-processes a raw point list and records degradation on
// the result. Coincident endpoints are separated by a minimal stub so the
// output always holds the no-duplicate invariant.
func finishPath(points []geometry.Point, cfg Config, result *RoutedPath) []geometry.Point {
	out, repaired := postProcess(points, cfg)
	if repaired {
		result.Status = StatusDegraded
	}
	if len(out) < 2 {
		var p geometry.Point
		if len(out) == 1 {
			p = out[0]
		} else if len(points) > 0 {
			p = points[0]
		}
		out = []geometry.Point{p, p.Add(geometry.Point{X: cfg.MinSegmentLength})}
	}
	return out
}
