// Package edit recomputes an elbow connector incrementally as the user
// drags endpoints, pins segments, or releases them, preserving untouched
// portions of the previous path.
package edit

import (
	"math"
	"sort"

	"elbow/geometry"
	"elbow/route"
)

// matchTol is the coordinate tolerance used when re-matching a fixed
// segment against a rewritten point list.
const matchTol = 1e-6

// FixedSegment is a pinned path segment. Index is its position in the
// path's segment list: segment i connects points[i-1] and points[i]. The
// segment's axis must survive edits even as its length or position along
// the perpendicular axis changes.
type FixedSegment struct {
	Index int
	Start geometry.Point
	End   geometry.Point
}

// Horizontal reports whether the pinned segment runs along the X axis.
func (f FixedSegment) Horizontal() bool {
	return math.Abs(f.Start.Y-f.End.Y) < geometry.Eps
}

// coord returns the segment's pinned coordinate: Y for horizontal
// segments, X for vertical ones.
func (f FixedSegment) coord() float64 {
	if f.Horizontal() {
		return f.Start.Y
	}
	return f.Start.X
}

// Sanitize drops fixed segments that cannot be honored: out-of-range
// indices, non-orthogonal geometry, segments below the merge tolerance,
// and duplicate indices. The result is sorted ascending by index.
// Invalid pins are discarded silently; they are stale state, not errors.
func Sanitize(segs []FixedSegment, points []geometry.Point, cfg route.Config) []FixedSegment {
	cfg = cfg.Normalized()
	out := make([]FixedSegment, 0, len(segs))
	seen := make(map[int]bool, len(segs))
	for _, seg := range segs {
		if seg.Index < 1 || seg.Index >= len(points) {
			continue
		}
		if seen[seg.Index] {
			continue
		}
		if !geometry.IsOrthogonal(seg.Start, seg.End) {
			continue
		}
		if geometry.Manhattan(seg.Start, seg.End) < cfg.MinSegmentLength {
			continue
		}
		seen[seg.Index] = true
		out = append(out, seg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// SyncToPoints re-reads each fixed segment's endpoints from the point
// list at its existing index. Use after edits that move points without
// changing their count or order.
func SyncToPoints(segs []FixedSegment, points []geometry.Point) []FixedSegment {
	out := make([]FixedSegment, 0, len(segs))
	for _, seg := range segs {
		if seg.Index < 1 || seg.Index >= len(points) {
			continue
		}
		seg.Start = points[seg.Index-1]
		seg.End = points[seg.Index]
		out = append(out, seg)
	}
	return out
}

// Reindex recomputes each fixed segment's index and endpoints against a
// rewritten point list by matching on axis and pinned coordinate.
// Segments that no longer match any path segment are dropped.
func Reindex(segs []FixedSegment, points []geometry.Point, cfg route.Config) []FixedSegment {
	out := make([]FixedSegment, 0, len(segs))
	used := make(map[int]bool)
	for _, seg := range segs {
		idx, ok := matchSegment(seg, points, used)
		if !ok {
			continue
		}
		used[idx] = true
		out = append(out, FixedSegment{
			Index: idx,
			Start: points[idx-1],
			End:   points[idx],
		})
	}
	return Sanitize(out, points, cfg)
}

// matchSegment finds the path segment sharing the pin's axis and
// coordinate, preferring the one overlapping it along the axis.
func matchSegment(seg FixedSegment, points []geometry.Point, used map[int]bool) (int, bool) {
	horizontal := seg.Horizontal()
	pinned := seg.coord()

	bestIdx := -1
	bestScore := math.MaxFloat64
	for i := 1; i < len(points); i++ {
		if used[i] {
			continue
		}
		a, b := points[i-1], points[i]
		segHorizontal := math.Abs(a.Y-b.Y) < geometry.Eps
		if segHorizontal != horizontal {
			continue
		}
		var c float64
		if horizontal {
			c = a.Y
		} else {
			c = a.X
		}
		if math.Abs(c-pinned) > matchTol {
			continue
		}
		score := axisGap(seg, a, b)
		if score < bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	return bestIdx, true
}

// axisGap measures how far a candidate segment sits from the pin along
// the shared axis: zero when their spans overlap, otherwise the gap.
func axisGap(seg FixedSegment, a, b geometry.Point) float64 {
	var lo1, hi1, lo2, hi2 float64
	if seg.Horizontal() {
		lo1, hi1 = math.Min(seg.Start.X, seg.End.X), math.Max(seg.Start.X, seg.End.X)
		lo2, hi2 = math.Min(a.X, b.X), math.Max(a.X, b.X)
	} else {
		lo1, hi1 = math.Min(seg.Start.Y, seg.End.Y), math.Max(seg.Start.Y, seg.End.Y)
		lo2, hi2 = math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	}
	if hi1 < lo2 {
		return lo2 - hi1
	}
	if hi2 < lo1 {
		return lo1 - hi2
	}
	return 0
}

// shiftIndices moves every fixed segment index at or above from by delta.
func shiftIndices(segs []FixedSegment, from, delta int) []FixedSegment {
	out := make([]FixedSegment, 0, len(segs))
	for _, seg := range segs {
		if seg.Index >= from {
			seg.Index += delta
		}
		out = append(out, seg)
	}
	return out
}
