package elbow

import (
	"testing"

	"elbow/edit"
	"elbow/geometry"
	"elbow/route"
)

func TestRouteThenEdit(t *testing.T) {
	boxA := geometry.NewRect(0, 0, 40, 40)
	boxB := geometry.NewRect(100, 60, 40, 40)
	startBinding := &route.BindingRef{ElementID: "a", Bounds: boxA, Anchor: geometry.Point{X: 40, Y: 20}}
	endBinding := &route.BindingRef{ElementID: "b", Bounds: boxB, Anchor: geometry.Point{X: 100, Y: 80}}
	cfg := route.DefaultConfig()

	rp, err := Route(route.Request{
		Start:        boxA.Center(),
		End:          boxB.Center(),
		StartBinding: startBinding,
		EndBinding:   endBinding,
	}, cfg)
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if err := route.ValidatePath(rp.Points); err != nil {
		t.Fatalf("invalid route: %v", err)
	}

	// Pin the middle segment, then re-apply it through the edit pipeline.
	mid := len(rp.Points) / 2
	pins := []edit.FixedSegment{{Index: mid, Start: rp.Points[mid-1], End: rp.Points[mid]}}

	res, err := ComputeEdit(edit.Request{
		PrevPoints:   rp.Points,
		Fixed:        &pins,
		StartBinding: startBinding,
		EndBinding:   endBinding,
	}, cfg)
	if err != nil {
		t.Fatalf("ComputeEdit failed: %v", err)
	}
	if err := route.ValidatePath(res.Points); err != nil {
		t.Fatalf("invalid edited path: %v", err)
	}
	if len(res.Fixed) != 1 {
		t.Fatalf("fixed = %v, want the new pin to survive", res.Fixed)
	}
}
