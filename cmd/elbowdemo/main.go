// Command elbowdemo is an interactive playground for the elbow routing
// engine. Two boxes are drawn on a terminal canvas with a routed
// connector between them; every keystroke goes through the edit pipeline
// so drag, pin, release, and re-apply modes can all be watched live.
//
// Keys: arrows move the active side (the box when bound, the endpoint
// when loose), Tab switches sides, b toggles the active binding, p pins
// the middle segment, r releases the newest pin, q or Esc quits.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"

	"elbow/edit"
	"elbow/geometry"
	"elbow/route"
)

type demo struct {
	screen tcell.Screen
	cfg    route.Config

	boxes     [2]geometry.Rect
	bound     [2]bool
	loosePos  [2]geometry.Point
	activeEnd int

	points []geometry.Point
	fixed  []edit.FixedSegment
	status string
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "elbowdemo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "elbowdemo: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cfg := route.DefaultConfig()
	// Terminal cells are coarse; shrink the paddings to match.
	cfg.BasePadding = 2
	cfg.ArrowheadGap = 1
	cfg.BendPenalty = 4
	cfg.MinSegmentLength = 0.5

	d := &demo{
		screen: screen,
		cfg:    cfg,
		boxes: [2]geometry.Rect{
			geometry.NewRect(6, 3, 16, 6),
			geometry.NewRect(44, 14, 18, 7),
		},
		bound: [2]bool{true, true},
	}
	d.loosePos[0] = d.boxes[0].Center()
	d.loosePos[1] = d.boxes[1].Center()
	d.routeFresh()

	for {
		d.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyTab:
		d.activeEnd = 1 - d.activeEnd
		d.status = fmt.Sprintf("active: %s", sideName(d.activeEnd))
		return true
	case tcell.KeyUp:
		d.moveActive(0, -1)
		return true
	case tcell.KeyDown:
		d.moveActive(0, 1)
		return true
	case tcell.KeyLeft:
		d.moveActive(-1, 0)
		return true
	case tcell.KeyRight:
		d.moveActive(1, 0)
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'b':
		d.bound[d.activeEnd] = !d.bound[d.activeEnd]
		if !d.bound[d.activeEnd] && len(d.points) > 0 {
			// Leave the loose endpoint where the connector currently ends.
			if d.activeEnd == 0 {
				d.loosePos[0] = d.points[0]
			} else {
				d.loosePos[1] = d.points[len(d.points)-1]
			}
		}
		d.routeFresh()
	case 'p':
		d.pinMiddleSegment()
	case 'r':
		d.releaseNewestPin()
	}
	return true
}

// moveActive shifts the active side and recomputes the path through the
// edit pipeline so the drag modes get exercised.
func (d *demo) moveActive(dx, dy int) {
	delta := geometry.Point{X: float64(dx), Y: float64(dy)}
	if d.bound[d.activeEnd] {
		box := d.boxes[d.activeEnd]
		d.boxes[d.activeEnd] = geometry.Rect{Min: box.Min.Add(delta), Max: box.Max.Add(delta)}
	} else {
		d.loosePos[d.activeEnd] = d.loosePos[d.activeEnd].Add(delta)
	}

	newPoints := make([]geometry.Point, len(d.points))
	copy(newPoints, d.points)
	if len(newPoints) >= 2 {
		if d.activeEnd == 0 {
			newPoints[0] = newPoints[0].Add(delta)
		} else {
			newPoints[len(newPoints)-1] = newPoints[len(newPoints)-1].Add(delta)
		}
	}
	d.applyEdit(edit.Request{
		PrevPoints:   d.points,
		PrevFixed:    d.fixed,
		Points:       newPoints,
		StartBinding: d.binding(0),
		EndBinding:   d.binding(1),
	})
}

func (d *demo) pinMiddleSegment() {
	if len(d.points) < 2 {
		return
	}
	idx := len(d.points) / 2
	if idx < 1 {
		idx = 1
	}
	for _, seg := range d.fixed {
		if seg.Index == idx {
			return
		}
	}
	newFixed := append(append([]edit.FixedSegment{}, d.fixed...), edit.FixedSegment{
		Index: idx,
		Start: d.points[idx-1],
		End:   d.points[idx],
	})
	d.applyEdit(edit.Request{
		PrevPoints:   d.points,
		PrevFixed:    d.fixed,
		Fixed:        &newFixed,
		StartBinding: d.binding(0),
		EndBinding:   d.binding(1),
	})
}

func (d *demo) releaseNewestPin() {
	if len(d.fixed) == 0 {
		return
	}
	newFixed := append([]edit.FixedSegment{}, d.fixed[:len(d.fixed)-1]...)
	d.applyEdit(edit.Request{
		PrevPoints:   d.points,
		PrevFixed:    d.fixed,
		Fixed:        &newFixed,
		StartBinding: d.binding(0),
		EndBinding:   d.binding(1),
	})
}

func (d *demo) applyEdit(req edit.Request) {
	res, err := edit.ComputeEdit(req, d.cfg)
	if err != nil {
		d.status = err.Error()
		return
	}
	d.points = res.Points
	d.fixed = res.Fixed
	d.status = fmt.Sprintf("mode: %s  pins: %d", res.Mode, len(res.Fixed))
}

func (d *demo) routeFresh() {
	rp, err := route.Route(route.Request{
		Start:        d.endpoint(0),
		End:          d.endpoint(1),
		StartBinding: d.binding(0),
		EndBinding:   d.binding(1),
	}, d.cfg)
	if err != nil {
		d.status = err.Error()
		return
	}
	d.points = rp.Points
	d.fixed = nil
	d.status = fmt.Sprintf("route: %s", rp.Status)
}

func (d *demo) endpoint(side int) geometry.Point {
	if d.bound[side] {
		return d.boxes[side].Center()
	}
	return d.loosePos[side]
}

func (d *demo) binding(side int) *route.BindingRef {
	if !d.bound[side] {
		return nil
	}
	other := d.endpoint(1 - side)
	box := d.boxes[side]
	anchor, ok := box.RayBoundaryPoint(box.Center(), box.HeadingForPoint(other))
	if !ok {
		anchor = box.NearestBoundaryPoint(other)
	}
	return &route.BindingRef{
		ElementID: sideName(side),
		Bounds:    box,
		Anchor:    anchor,
		Gap:       1,
	}
}

func (d *demo) draw() {
	s := d.screen
	s.Clear()
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	pinStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for i, box := range d.boxes {
		if d.bound[i] {
			drawBox(s, box, boxStyle)
		}
	}
	for i := 1; i < len(d.points); i++ {
		style := pathStyle
		for _, seg := range d.fixed {
			if seg.Index == i {
				style = pinStyle
			}
		}
		drawSegment(s, d.points[i-1], d.points[i], style)
	}
	for x, r := range []rune(d.status + "  [tab/arrows/b/p/r/q]") {
		s.SetContent(x, 0, r, nil, tcell.StyleDefault)
	}
	s.Show()
}

func drawBox(s tcell.Screen, r geometry.Rect, style tcell.Style) {
	x0, y0 := cell(r.Min.X), cell(r.Min.Y)
	x1, y1 := cell(r.Max.X), cell(r.Max.Y)
	for x := x0; x <= x1; x++ {
		s.SetContent(x, y0, '─', nil, style)
		s.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		s.SetContent(x0, y, '│', nil, style)
		s.SetContent(x1, y, '│', nil, style)
	}
	s.SetContent(x0, y0, '┌', nil, style)
	s.SetContent(x1, y0, '┐', nil, style)
	s.SetContent(x0, y1, '└', nil, style)
	s.SetContent(x1, y1, '┘', nil, style)
}

func drawSegment(s tcell.Screen, a, b geometry.Point, style tcell.Style) {
	ax, ay := cell(a.X), cell(a.Y)
	bx, by := cell(b.X), cell(b.Y)
	if ay == by {
		if bx < ax {
			ax, bx = bx, ax
		}
		for x := ax; x <= bx; x++ {
			s.SetContent(x, ay, '─', nil, style)
		}
		return
	}
	if by < ay {
		ay, by = by, ay
	}
	for y := ay; y <= by; y++ {
		s.SetContent(ax, y, '│', nil, style)
	}
}

func cell(v float64) int {
	return int(math.Round(v))
}

func sideName(side int) string {
	if side == 0 {
		return "start"
	}
	return "end"
}
