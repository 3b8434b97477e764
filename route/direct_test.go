package route

import (
	"testing"

	"elbow/geometry"
)

func TestDirectRoute(t *testing.T) {
	unbound := func(x, y float64) ResolvedEndpoint {
		return ResolvedEndpoint{Pos: geometry.Point{X: x, Y: y}}
	}
	bound := func(x, y float64, h geometry.Heading, shape geometry.Rect) ResolvedEndpoint {
		return ResolvedEndpoint{Pos: geometry.Point{X: x, Y: y}, Heading: h, Bound: true, Rect: shape}
	}
	shape := geometry.NewRect(40, -20, 20, 40)

	tests := []struct {
		name       string
		start, end ResolvedEndpoint
		layout     Layout
		wantOK     bool
	}{
		{
			name:   "aligned unbound",
			start:  unbound(0, 0),
			end:    unbound(100, 0),
			wantOK: true,
		},
		{
			name:   "not axis aligned",
			start:  unbound(0, 0),
			end:    unbound(100, 5),
			wantOK: false,
		},
		{
			name:   "coincident",
			start:  unbound(5, 5),
			end:    unbound(5, 5),
			wantOK: false,
		},
		{
			name:   "bound start along heading",
			start:  bound(0, 0, geometry.East, geometry.NewRect(-40, -20, 40, 40)),
			end:    unbound(100, 0),
			wantOK: true,
		},
		{
			name:   "bound start against heading",
			start:  bound(0, 0, geometry.West, geometry.NewRect(-40, -20, 40, 40)),
			end:    unbound(100, 0),
			wantOK: false,
		},
		{
			name:   "bound end arrival must travel inward",
			start:  unbound(0, 0),
			end:    bound(100, 0, geometry.West, geometry.NewRect(100, -20, 40, 40)),
			wantOK: true,
		},
		{
			name:  "segment cut by a shape",
			start: unbound(0, 0),
			end:   unbound(100, 0),
			layout: Layout{Obstacles: []Obstacle{{
				Rect:  shape.Inflate(32),
				Shape: shape,
				Owner: EndSide,
			}}},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, ok := DirectRoute(tt.start, tt.end, tt.layout)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if len(pts) != 2 || !pts[0].Eq(tt.start.Pos) || !pts[1].Eq(tt.end.Pos) {
				t.Errorf("points = %v, want straight segment %v-%v", pts, tt.start.Pos, tt.end.Pos)
			}
		})
	}
}
