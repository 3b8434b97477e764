// Package elbow routes and edits orthogonal (elbow) connectors between
// two endpoints that may be bound to rectangular shapes. Routes avoid the
// bound shapes, respect arrowhead clearance, and minimize bends; edits
// preserve pinned segments and untouched portions of the previous path.
//
// Both entry points are pure: every call receives its own copies of the
// inputs and returns fresh values, and the host owns all persistence.
package elbow

import (
	"elbow/edit"
	"elbow/route"
)

// Route computes an orthogonal connector for the request in world space.
func Route(req route.Request, cfg route.Config) (route.RoutedPath, error) {
	return route.Route(req, cfg)
}

// ComputeEdit recomputes a connector's local points incrementally after
// an endpoint drag, a pin, a release, or a bound-element move.
func ComputeEdit(req edit.Request, cfg route.Config) (edit.Result, error) {
	return edit.ComputeEdit(req, cfg)
}
