package route

import "elbow/geometry"

// fallbackElbow produces the deterministic midpoint elbow used when the
// grid search fails or the endpoints are too close to bother searching.
// The bend is placed so terminal segments run along whichever required
// headings are present.
func fallbackElbow(start, end ResolvedEndpoint) []geometry.Point {
	s, e := start.Pos, end.Pos
	if geometry.IsOrthogonal(s, e) {
		return []geometry.Point{s, e}
	}

	switch {
	case start.Bound && end.Bound && start.Heading.IsHorizontal() == end.Heading.IsHorizontal():
		// Same-axis headings need two bends; split at the midline.
		if start.Heading.IsHorizontal() {
			midX := (s.X + e.X) / 2
			return []geometry.Point{s, {X: midX, Y: s.Y}, {X: midX, Y: e.Y}, e}
		}
		midY := (s.Y + e.Y) / 2
		return []geometry.Point{s, {X: s.X, Y: midY}, {X: e.X, Y: midY}, e}
	case start.Bound:
		if start.Heading.IsHorizontal() {
			return []geometry.Point{s, {X: e.X, Y: s.Y}, e}
		}
		return []geometry.Point{s, {X: s.X, Y: e.Y}, e}
	case end.Bound:
		// The final segment must run along the end heading's axis.
		if end.Heading.IsHorizontal() {
			return []geometry.Point{s, {X: s.X, Y: e.Y}, e}
		}
		return []geometry.Point{s, {X: e.X, Y: s.Y}, e}
	default:
		// Both unbound: horizontal-first, matching the direct finder's
		// default strategy.
		return []geometry.Point{s, {X: e.X, Y: s.Y}, e}
	}
}
