package route

import (
	"fmt"
	"math"

	"elbow/geometry"
)

// postProcess cleans a raw point list into a valid route: diagonals are
// repaired with an inserted corner, segments below the merge tolerance
// are collapsed, collinear interior points are dropped, and coordinates
// are clamped into a sane range. The second return reports whether a
// diagonal had to be repaired.
func postProcess(points []geometry.Point, cfg Config) ([]geometry.Point, bool) {
	if len(points) == 0 {
		return points, false
	}

	repaired := false

	// Repair diagonals with a horizontal-first corner. The grid never
	// emits them; this guards fallback math and future grid changes.
	fixed := make([]geometry.Point, 0, len(points))
	fixed = append(fixed, points[0])
	for i := 1; i < len(points); i++ {
		prev := fixed[len(fixed)-1]
		cur := points[i]
		if !geometry.IsOrthogonal(prev, cur) {
			fixed = append(fixed, geometry.Point{X: cur.X, Y: prev.Y})
			repaired = true
		}
		fixed = append(fixed, cur)
	}

	// Collapse segments shorter than the tolerance. The earlier corner is
	// replaced by the later point and its neighbor slides along its own
	// axis, so adjacent segments stay orthogonal.
	merged := make([]geometry.Point, 0, len(fixed))
	merged = append(merged, fixed[0])
	for i := 1; i < len(fixed); i++ {
		last := merged[len(merged)-1]
		if geometry.Manhattan(last, fixed[i]) < cfg.MinSegmentLength {
			if len(merged) == 1 {
				// Never move the path start; drop the near point instead.
				continue
			}
			prev := &merged[len(merged)-2]
			if math.Abs(prev.Y-last.Y) < geometry.Eps {
				prev.Y = fixed[i].Y
			}
			if math.Abs(prev.X-last.X) < geometry.Eps {
				prev.X = fixed[i].X
			}
			merged[len(merged)-1] = fixed[i]
			continue
		}
		merged = append(merged, fixed[i])
	}

	// Keep only true corners.
	simplified := make([]geometry.Point, 0, len(merged))
	for i, p := range merged {
		if i > 0 && i < len(merged)-1 && geometry.Collinear(simplified[len(simplified)-1], p, merged[i+1]) {
			continue
		}
		simplified = append(simplified, p)
	}

	for i := range simplified {
		simplified[i].X = geometry.Clamp(simplified[i].X, -cfg.CoordClamp, cfg.CoordClamp)
		simplified[i].Y = geometry.Clamp(simplified[i].Y, -cfg.CoordClamp, cfg.CoordClamp)
	}

	return simplified, repaired
}

// CleanPath post-processes a point list without tracking degradation.
// Already-valid spans pass through unchanged, so callers can clean a
// spliced path without disturbing its untouched points.
func CleanPath(points []geometry.Point, cfg Config) []geometry.Point {
	out, _ := postProcess(points, cfg.Normalized())
	return out
}

// ValidatePath checks the route invariants: strict orthogonality, no
// duplicate consecutive points, no collinear interior points.
func ValidatePath(points []geometry.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("path needs at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Eq(points[i-1]) {
			return fmt.Errorf("duplicate point at index %d", i)
		}
		if !geometry.IsOrthogonal(points[i-1], points[i]) {
			return fmt.Errorf("diagonal segment at index %d", i)
		}
	}
	for i := 1; i < len(points)-1; i++ {
		if geometry.Collinear(points[i-1], points[i], points[i+1]) {
			return fmt.Errorf("collinear point at index %d", i)
		}
	}
	return nil
}
