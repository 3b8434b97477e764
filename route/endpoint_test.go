package route

import (
	"testing"

	"elbow/geometry"
)

func TestResolveEndpointUnbound(t *testing.T) {
	got := ResolveEndpoint(geometry.Point{X: 0, Y: 0}, nil, geometry.Point{X: 100, Y: 10}, DefaultConfig())

	if got.Bound {
		t.Error("unbound endpoint resolved as bound")
	}
	if !got.Pos.Eq(geometry.Point{X: 0, Y: 0}) {
		t.Errorf("Pos = %v, want raw point", got.Pos)
	}
	if got.Heading != geometry.East {
		t.Errorf("Heading = %v, want East (toward opposite)", got.Heading)
	}
}

func TestResolveEndpointBound(t *testing.T) {
	box := geometry.NewRect(0, 0, 40, 40)

	tests := []struct {
		name        string
		anchor      geometry.Point
		gap         float64
		wantPos     geometry.Point
		wantHeading geometry.Heading
	}{
		{
			name:        "anchor on right edge, default gap",
			anchor:      geometry.Point{X: 40, Y: 20},
			wantPos:     geometry.Point{X: 48, Y: 20},
			wantHeading: geometry.East,
		},
		{
			name:        "anchor on right edge, explicit gap",
			anchor:      geometry.Point{X: 40, Y: 20},
			gap:         4,
			wantPos:     geometry.Point{X: 44, Y: 20},
			wantHeading: geometry.East,
		},
		{
			name:        "anchor drifted off the shape is pulled back",
			anchor:      geometry.Point{X: 60, Y: 20},
			wantPos:     geometry.Point{X: 48, Y: 20},
			wantHeading: geometry.East,
		},
		{
			name:        "interior anchor snaps along its heading",
			anchor:      geometry.Point{X: 35, Y: 20},
			wantPos:     geometry.Point{X: 48, Y: 20},
			wantHeading: geometry.East,
		},
		{
			name:        "anchor on top edge",
			anchor:      geometry.Point{X: 20, Y: 0},
			wantPos:     geometry.Point{X: 20, Y: -8},
			wantHeading: geometry.North,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding := &BindingRef{ElementID: "el", Bounds: box, Anchor: tt.anchor, Gap: tt.gap}
			got := ResolveEndpoint(box.Center(), binding, geometry.Point{X: 500, Y: 500}, DefaultConfig())

			if !got.Bound {
				t.Fatal("bound endpoint resolved as unbound")
			}
			if !got.Pos.Eq(tt.wantPos) {
				t.Errorf("Pos = %v, want %v", got.Pos, tt.wantPos)
			}
			if got.Heading != tt.wantHeading {
				t.Errorf("Heading = %v, want %v", got.Heading, tt.wantHeading)
			}
		})
	}
}
