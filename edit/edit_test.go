package edit

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"elbow/geometry"
	"elbow/route"
)

// zigzag is a 5-segment staircase used across the edit tests:
//
//	(0,0)──(50,0)
//	          │
//	       (50,40)──(100,40)
//	                    │
//	                (100,80)──(150,80)
func zigzag() []geometry.Point {
	return []geometry.Point{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
		{X: 50, Y: 40},
		{X: 100, Y: 40},
		{X: 100, Y: 80},
		{X: 150, Y: 80},
	}
}

func TestComputeEditFreshRoute(t *testing.T) {
	res, err := ComputeEdit(Request{
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeRouteFresh {
		t.Errorf("mode = %v, want routeFresh", res.Mode)
	}
	want := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if diff := cmp.Diff(want, res.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if res.Fixed != nil {
		t.Errorf("fixed = %v, want none", res.Fixed)
	}
}

func TestComputeEditApplyFixedMove(t *testing.T) {
	prev := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 40}}
	prevFixed := []FixedSegment{{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}}}
	moved := []FixedSegment{{Index: 2, Start: geometry.Point{X: 60, Y: 0}, End: geometry.Point{X: 60, Y: 40}}}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  prevFixed,
		Fixed:      &moved,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeApplyFixed {
		t.Errorf("mode = %v, want applyFixedSegments", res.Mode)
	}
	want := []geometry.Point{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 60, Y: 40}, {X: 100, Y: 40}}
	if diff := cmp.Diff(want, res.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if len(res.Fixed) != 1 || res.Fixed[0].Index != 2 {
		t.Fatalf("fixed = %v, want the moved pin at index 2", res.Fixed)
	}
	if res.Fixed[0].Start.X != 60 {
		t.Errorf("pinned coordinate = %v, want 60", res.Fixed[0].Start.X)
	}
}

func TestComputeEditReleaseKeepsRemainder(t *testing.T) {
	// Two pins on the staircase; releasing the first one re-routes only the
	// span up to the surviving pin. Everything from the surviving pin's
	// start onward stays byte-for-byte identical.
	prev := zigzag()
	prevFixed := []FixedSegment{
		{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}},
		{Index: 4, Start: geometry.Point{X: 100, Y: 40}, End: geometry.Point{X: 100, Y: 80}},
	}
	remaining := []FixedSegment{prevFixed[1]}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  prevFixed,
		Fixed:      &remaining,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeReleaseFixed {
		t.Errorf("mode = %v, want releaseFixedSegments", res.Mode)
	}
	want := []geometry.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 40},
		{X: 100, Y: 40},
		{X: 100, Y: 80},
		{X: 150, Y: 80},
	}
	if diff := cmp.Diff(want, res.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if len(res.Fixed) != 1 {
		t.Fatalf("fixed = %v, want one surviving pin", res.Fixed)
	}
	if res.Fixed[0].Index != 3 {
		t.Errorf("surviving pin index = %d, want 3 after the splice", res.Fixed[0].Index)
	}
	// The suffix from the surviving pin onward matches the previous path.
	if diff := cmp.Diff(prev[3:], res.Points[2:]); diff != "" {
		t.Errorf("suffix changed (-prev +got):\n%s", diff)
	}
}

func TestComputeEditReleaseAllPins(t *testing.T) {
	prev := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 40}}
	prevFixed := []FixedSegment{{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}}}
	none := []FixedSegment{}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  prevFixed,
		Fixed:      &none,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeReleaseFixed {
		t.Errorf("mode = %v, want releaseFixedSegments", res.Mode)
	}
	if res.Fixed != nil {
		t.Errorf("fixed = %v, want none", res.Fixed)
	}
	if err := route.ValidatePath(res.Points); err != nil {
		t.Errorf("invalid path after release: %v", err)
	}
	if !res.Points[0].Eq(prev[0]) || !res.Points[len(res.Points)-1].Eq(prev[len(prev)-1]) {
		t.Error("release must keep the path endpoints")
	}
}

func TestComputeEditTwoSidedDragRoutesFresh(t *testing.T) {
	prev := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 40}}
	fixed := []FixedSegment{{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}}}

	points := clonePoints(prev)
	points[0] = geometry.Point{X: 0, Y: 10}
	points[len(points)-1] = geometry.Point{X: 100, Y: 50}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  fixed,
		Points:     points,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeRouteFresh {
		t.Errorf("mode = %v, want routeFresh for a two-sided drag", res.Mode)
	}
	if err := route.ValidatePath(res.Points); err != nil {
		t.Errorf("invalid path: %v", err)
	}
}

func TestComputeEditInteriorJiggleSnapsBack(t *testing.T) {
	prev := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 40}}
	fixed := []FixedSegment{{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}}}

	points := clonePoints(prev)
	points[1] = geometry.Point{X: 50, Y: 10}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  fixed,
		Points:     points,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeApplyFixed {
		t.Errorf("mode = %v, want applyFixedSegments", res.Mode)
	}
	if diff := cmp.Diff(prev, res.Points); diff != "" {
		t.Errorf("points should snap back to the orthogonal shape (-want +got):\n%s", diff)
	}
}

func TestComputeEditStalePinsDiscarded(t *testing.T) {
	prev := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	stale := []FixedSegment{
		{Index: 9, Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 0, Y: 40}},
	}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  stale,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeRouteFresh {
		t.Errorf("mode = %v, want routeFresh once stale pins are dropped", res.Mode)
	}
	if res.Fixed != nil {
		t.Errorf("fixed = %v, want none", res.Fixed)
	}
}

func TestComputeEditContractError(t *testing.T) {
	_, err := ComputeEdit(Request{
		Points: []geometry.Point{{X: math.NaN(), Y: 0}, {X: 10, Y: 0}},
	}, route.DefaultConfig())

	var ce *route.ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ContractError", err)
	}
}

func TestComputeEditIdempotentApply(t *testing.T) {
	prev := zigzag()
	fixed := []FixedSegment{
		{Index: 2, Start: geometry.Point{X: 50, Y: 0}, End: geometry.Point{X: 50, Y: 40}},
	}

	res, err := ComputeEdit(Request{
		PrevPoints: prev,
		PrevFixed:  fixed,
		Fixed:      &fixed,
	}, route.DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}

	if res.Mode != ModeApplyFixed {
		t.Errorf("mode = %v, want applyFixedSegments", res.Mode)
	}
	if diff := cmp.Diff(prev, res.Points); diff != "" {
		t.Errorf("re-applying unchanged pins must not move points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fixed, res.Fixed); diff != "" {
		t.Errorf("fixed changed (-want +got):\n%s", diff)
	}
}
