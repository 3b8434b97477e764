// Package route computes orthogonal elbow connectors between two
// endpoints, avoiding the rectangular shapes the endpoints are bound to.
package route

import (
	"fmt"
	"math"

	"elbow/geometry"
)

// EndpointSide identifies which end of a connector a value belongs to.
type EndpointSide int

const (
	StartSide EndpointSide = iota
	EndSide
)

// String returns the string representation of an EndpointSide.
func (s EndpointSide) String() string {
	if s == StartSide {
		return "start"
	}
	return "end"
}

// BindingRef is a one-shot snapshot of a host element an endpoint is bound
// to. The engine never looks elements up; the host supplies current bounds
// and the anchor point on each call.
type BindingRef struct {
	ElementID string
	// Bounds is the element's current axis-aligned bounding box.
	Bounds geometry.Rect
	// Anchor is the attachment point on (or near) the element boundary.
	Anchor geometry.Point
	// Gap is the arrowhead clearance between the boundary and the first
	// route point.
	Gap float64
}

// ResolvedEndpoint is the routing view of one connector end: its position,
// the direction the route must travel when leaving it, and the bound
// shape, if any. Heading points away from the bound shape, so a route
// departs a bound start along Heading and arrives at a bound end traveling
// Heading.Opposite().
type ResolvedEndpoint struct {
	Pos     geometry.Point
	Heading geometry.Heading
	Bound   bool
	Rect    geometry.Rect // bound shape bounds; zero when unbound
	Gap     float64
}

// Request describes one routing call.
type Request struct {
	Start        geometry.Point
	End          geometry.Point
	StartBinding *BindingRef
	EndBinding   *BindingRef
}

// Status reports which algorithm produced a route.
type Status int

const (
	// StatusOK means the direct checker or the grid search succeeded.
	StatusOK Status = iota
	// StatusFallback means the search was exhausted and a deterministic
	// midpoint elbow was returned instead.
	StatusFallback
	// StatusDegraded means post-processing had to repair a diagonal
	// segment. The route is still valid.
	StatusDegraded
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFallback:
		return "fallback"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// RoutedPath is the result of one routing call: a strictly orthogonal,
// deduplicated polyline plus the resolved endpoints that produced it.
type RoutedPath struct {
	Points []geometry.Point
	Start  ResolvedEndpoint
	End    ResolvedEndpoint
	Status Status
}

// ContractError reports a malformed request, such as NaN coordinates.
// It marks a programming error in the caller, unlike the geometric edge
// cases the engine absorbs silently.
type ContractError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation: %s: %s", e.Field, e.Reason)
}

// checkFinite validates that a point has finite coordinates.
func checkFinite(field string, p geometry.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return &ContractError{Field: field, Reason: "NaN coordinate"}
	}
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return &ContractError{Field: field, Reason: "infinite coordinate"}
	}
	return nil
}

// CheckPoint validates that a named point has finite coordinates,
// returning a ContractError otherwise.
func CheckPoint(field string, p geometry.Point) error {
	return checkFinite(field, p)
}

// CheckRequest validates a request's coordinates, returning a
// ContractError for non-finite input.
func CheckRequest(req Request) error {
	if err := checkFinite("start", req.Start); err != nil {
		return err
	}
	if err := checkFinite("end", req.End); err != nil {
		return err
	}
	if req.StartBinding != nil {
		if err := checkFinite("startBinding.anchor", req.StartBinding.Anchor); err != nil {
			return err
		}
	}
	if req.EndBinding != nil {
		if err := checkFinite("endBinding.anchor", req.EndBinding.Anchor); err != nil {
			return err
		}
	}
	return nil
}
