package route

import (
	"container/heap"
	"math"
	"sort"

	"elbow/geometry"
)

// coordMergeTol merges candidate grid coordinates that are effectively
// identical, keeping the grid small and the search deterministic.
const coordMergeTol = 1e-6

// gridNode represents one search state: a grid intersection entered while
// traveling in a particular direction. Keying states by direction keeps
// bend costs and heading constraints exact.
type gridNode struct {
	pos    geometry.Point
	xi, yi int
	dir    geometry.Heading
	gCost  float64
	hCost  float64
	fCost  float64
	parent *gridNode
	index  int // heap index
}

type stateKey struct {
	xi, yi int
	dir    geometry.Heading
}

// nodeQueue is a priority queue of search states.
type nodeQueue []*gridNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	// Tie-breakers keep the search deterministic and symmetric.
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	si := nq[i].pos.X + nq[i].pos.Y
	sj := nq[j].pos.X + nq[j].pos.Y
	if si != sj {
		return si < sj
	}
	if nq[i].pos.X != nq[j].pos.X {
		return nq[i].pos.X < nq[j].pos.X
	}
	if nq[i].pos.Y != nq[j].pos.Y {
		return nq[i].pos.Y < nq[j].pos.Y
	}
	return nq[i].dir < nq[j].dir
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := x.(*gridNode)
	n.index = len(*nq)
	*nq = append(*nq, n)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*nq = old[:n-1]
	return node
}

// grid is the sparse routing grid: the cross-product of candidate X and Y
// coordinates clipped to the search bounds.
type grid struct {
	xs, ys []float64
}

// buildGrid collects the interesting coordinates for a routing call:
// endpoint and dongle positions, padded obstacle edges, and any extra
// coordinates pinned by fixed segments.
func buildGrid(start, end ResolvedEndpoint, layout Layout, extraXs, extraYs []float64) grid {
	xs := []float64{start.Pos.X, end.Pos.X, layout.StartDongle.X, layout.EndDongle.X}
	ys := []float64{start.Pos.Y, end.Pos.Y, layout.StartDongle.Y, layout.EndDongle.Y}
	for _, obs := range layout.Obstacles {
		xs = append(xs, obs.Rect.Min.X, obs.Rect.Max.X)
		ys = append(ys, obs.Rect.Min.Y, obs.Rect.Max.Y)
	}
	xs = append(xs, extraXs...)
	ys = append(ys, extraYs...)

	return grid{
		xs: clipAndDedupe(xs, layout.Bounds.Min.X, layout.Bounds.Max.X),
		ys: clipAndDedupe(ys, layout.Bounds.Min.Y, layout.Bounds.Max.Y),
	}
}

// clipAndDedupe sorts candidate coordinates, drops those outside the
// search bounds, and merges near-duplicates.
func clipAndDedupe(vals []float64, lo, hi float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0]
	for _, v := range vals {
		if v < lo-coordMergeTol || v > hi+coordMergeTol {
			continue
		}
		if len(out) > 0 && v-out[len(out)-1] < coordMergeTol {
			continue
		}
		out = append(out, v)
	}
	return out
}

// indexOf finds the grid index of a coordinate known to be a candidate.
func indexOf(vals []float64, v float64) (int, bool) {
	i := sort.SearchFloat64s(vals, v-coordMergeTol)
	if i < len(vals) && math.Abs(vals[i]-v) <= coordMergeTol {
		return i, true
	}
	return 0, false
}

// gridRoute searches the sparse grid for a minimal-bend orthogonal path
// from the start dongle to the end dongle. It returns false when no path
// exists or the expansion budget is exhausted; the caller falls back to a
// midpoint elbow.
func gridRoute(start, end ResolvedEndpoint, layout Layout, cfg Config, extraXs, extraYs []float64) ([]geometry.Point, bool) {
	g := buildGrid(start, end, layout, extraXs, extraYs)

	sxi, ok1 := indexOf(g.xs, layout.StartDongle.X)
	syi, ok2 := indexOf(g.ys, layout.StartDongle.Y)
	gxi, ok3 := indexOf(g.xs, layout.EndDongle.X)
	gyi, ok4 := indexOf(g.ys, layout.EndDongle.Y)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}

	goal := geometry.Point{X: g.xs[gxi], Y: g.ys[gyi]}
	goalEntersShape := end.Bound && layout.EndDongle.Eq(end.Pos)
	startLeavesShape := start.Bound && layout.StartDongle.Eq(start.Pos)

	startDir := geometry.NoHeading
	if start.Bound {
		// The endpoint-to-dongle hop already travels along the required
		// heading; seed the search state with it so turning immediately
		// after the exit costs a bend.
		startDir = start.Heading
	}

	startNode := &gridNode{
		pos:   geometry.Point{X: g.xs[sxi], Y: g.ys[syi]},
		xi:    sxi,
		yi:    syi,
		dir:   startDir,
		hCost: heuristic(geometry.Point{X: g.xs[sxi], Y: g.ys[syi]}, goal, cfg),
	}
	startNode.fCost = startNode.hCost

	openSet := &nodeQueue{}
	heap.Init(openSet)
	heap.Push(openSet, startNode)
	states := map[stateKey]*gridNode{{sxi, syi, startDir}: startNode}
	closed := map[stateKey]bool{}

	expansions := 0
	for openSet.Len() > 0 {
		expansions++
		if expansions > cfg.MaxExpansions {
			return nil, false
		}

		current := heap.Pop(openSet).(*gridNode)
		key := stateKey{current.xi, current.yi, current.dir}
		if closed[key] {
			continue
		}

		if current.xi == gxi && current.yi == gyi && goalDirOK(current.dir, end, goalEntersShape) {
			return reconstruct(current, start, end, layout), true
		}
		closed[key] = true

		for _, next := range neighbors(g, current) {
			dir := geometry.SegmentHeading(current.pos, next.pos)
			if dir == geometry.NoHeading {
				continue
			}
			// No immediate 180-degree reversals.
			if current.dir != geometry.NoHeading && dir == current.dir.Opposite() {
				continue
			}
			// A bound start must leave strictly along its heading when
			// the dongle coincides with the endpoint itself.
			if current.parent == nil && startLeavesShape && dir != start.Heading {
				continue
			}
			if layout.blocked(current.pos, next.pos) {
				continue
			}

			nextKey := stateKey{next.xi, next.yi, dir}
			if closed[nextKey] {
				continue
			}

			step := geometry.Manhattan(current.pos, next.pos)
			cost := step
			if current.dir != geometry.NoHeading && dir != current.dir {
				cost += cfg.BendPenalty
				// Charge quick re-turns extra; this suppresses staircase
				// jitter the same way a double turn cost does on a dense
				// grid.
				if current.parent != nil && current.parent.dir != geometry.NoHeading && current.parent.dir != current.dir {
					cost += cfg.BendPenalty
				}
			}
			tentative := current.gCost + cost

			existing, seen := states[nextKey]
			if !seen {
				node := &gridNode{
					pos:    next.pos,
					xi:     next.xi,
					yi:     next.yi,
					dir:    dir,
					gCost:  tentative,
					hCost:  heuristic(next.pos, goal, cfg),
					parent: current,
				}
				node.fCost = node.gCost + node.hCost
				heap.Push(openSet, node)
				states[nextKey] = node
			} else if tentative < existing.gCost {
				existing.gCost = tentative
				existing.fCost = existing.gCost + existing.hCost
				existing.parent = current
				heap.Fix(openSet, existing.index)
			}
		}
	}

	return nil, false
}

// goalDirOK checks the arrival-direction constraint at the end dongle.
func goalDirOK(dir geometry.Heading, end ResolvedEndpoint, entersShape bool) bool {
	if !end.Bound || dir == geometry.NoHeading {
		return true
	}
	if entersShape {
		// Arriving directly at the endpoint: must travel into the shape.
		return dir == end.Heading.Opposite()
	}
	// Arriving at the dongle: anything but an outward move works, since
	// the dongle-to-endpoint hop travels inward.
	return dir != end.Heading
}

type neighborPos struct {
	pos    geometry.Point
	xi, yi int
}

// neighbors returns the grid-adjacent intersections of a node.
func neighbors(g grid, n *gridNode) []neighborPos {
	out := make([]neighborPos, 0, 4)
	if n.xi > 0 {
		out = append(out, neighborPos{geometry.Point{X: g.xs[n.xi-1], Y: n.pos.Y}, n.xi - 1, n.yi})
	}
	if n.xi < len(g.xs)-1 {
		out = append(out, neighborPos{geometry.Point{X: g.xs[n.xi+1], Y: n.pos.Y}, n.xi + 1, n.yi})
	}
	if n.yi > 0 {
		out = append(out, neighborPos{geometry.Point{X: n.pos.X, Y: g.ys[n.yi-1]}, n.xi, n.yi - 1})
	}
	if n.yi < len(g.ys)-1 {
		out = append(out, neighborPos{geometry.Point{X: n.pos.X, Y: g.ys[n.yi+1]}, n.xi, n.yi + 1})
	}
	return out
}

// heuristic estimates the remaining cost: Manhattan distance plus one bend
// when both axes still differ. Admissible, so grid routes stay optimal.
func heuristic(p, goal geometry.Point, cfg Config) float64 {
	dx := math.Abs(goal.X - p.X)
	dy := math.Abs(goal.Y - p.Y)
	h := dx + dy
	if dx > coordMergeTol && dy > coordMergeTol {
		h += cfg.BendPenalty
	}
	return h
}

// reconstruct walks the parent chain into a point list and reattaches the
// endpoint-to-dongle hops.
func reconstruct(goalNode *gridNode, start, end ResolvedEndpoint, layout Layout) []geometry.Point {
	var rev []geometry.Point
	for n := goalNode; n != nil; n = n.parent {
		rev = append(rev, n.pos)
	}

	points := make([]geometry.Point, 0, len(rev)+2)
	if !layout.StartDongle.Eq(start.Pos) {
		points = append(points, start.Pos)
	}
	for i := len(rev) - 1; i >= 0; i-- {
		points = append(points, rev[i])
	}
	if !layout.EndDongle.Eq(end.Pos) {
		points = append(points, end.Pos)
	}
	return points
}
