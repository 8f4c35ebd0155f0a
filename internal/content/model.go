// Package content builds the typed tour model out of parsed documents:
// validation and coercion of front matter into waypoints and panels,
// deterministic ordering, markup normalization, and HUD binding.
package content

import "github.com/iver-m/waytour/internal/geom"

// WayPoint is one named camera stop. Immutable after Build.
type WayPoint struct {
	ID       string
	Title    string
	Position geom.Vec3
	LookAt   *geom.Vec3 // nil means not specified
	OnEnter  func()
}

// Panel is the in-world content attached to a waypoint. A panel exists only
// when the source document's body is non-empty after trimming.
type Panel struct {
	ID             string
	Title          string
	Content        string
	FallbackTarget geom.Vec3
	AnchorID       string
}

// Model is the complete loaded tour.
type Model struct {
	Waypoints []WayPoint
	Panels    []Panel
}

// HUDSink receives overlay markup when a waypoint is entered. Setting the
// empty string hides the overlay. Supplied by the host.
type HUDSink interface {
	Set(markup string)
}
