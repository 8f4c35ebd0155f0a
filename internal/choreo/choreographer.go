// Package choreo animates a camera between tour waypoints.
//
// A [Choreographer] owns an ordered waypoint list and a two-state transition
// machine: it is either Idle or Transitioning, and while Transitioning it
// carries the interpolation endpoints captured when the move started. Interpolation
// is linear per-component on position and look target with smoothstep easing;
// orientation is always derived from the interpolated look point, never
// interpolated directly.
//
// Choreographer is not safe for concurrent use. It is designed to be driven
// by a single frame loop: navigation calls first, then Update once per frame.
package choreo

import (
	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/geom"
)

// DefaultDurationMs is the transition length used until SetDuration is called.
const DefaultDurationMs = 1200

// Camera is the pose the choreographer reads and writes. Hosts inject their
// camera through [New]; nothing in this package reaches for globals.
type Camera interface {
	Pose() (pos, look geom.Vec3)
	SetPose(pos, look geom.Vec3)
}

// Phase is the choreographer's animation state.
type Phase int

const (
	Idle Phase = iota
	Transitioning
)

// transition holds interpolation endpoints. It only exists while the
// choreographer is Transitioning, so stale endpoints are unrepresentable.
type transition struct {
	t        float64
	fromPos  geom.Vec3
	toPos    geom.Vec3
	fromLook geom.Vec3
	toLook   geom.Vec3
}

// Choreographer moves a camera through an ordered list of waypoints.
type Choreographer struct {
	cam        Camera
	waypoints  []content.WayPoint
	active     int
	durationMs float64
	phase      Phase
	tr         transition
}

// New creates a choreographer driving cam. The waypoint list starts empty.
func New(cam Camera) *Choreographer {
	return &Choreographer{
		cam:        cam,
		active:     -1,
		durationMs: DefaultDurationMs,
	}
}

// Add appends a waypoint. Ordering is fixed by the caller (the content model
// builder sorts before registration).
func (c *Choreographer) Add(wp content.WayPoint) {
	c.waypoints = append(c.waypoints, wp)
}

// SetDuration sets the transition length in milliseconds. Non-positive
// values are ignored.
func (c *Choreographer) SetDuration(ms float64) {
	if ms > 0 {
		c.durationMs = ms
	}
}

// Len returns the number of registered waypoints.
func (c *Choreographer) Len() int { return len(c.waypoints) }

// Phase reports whether a transition is in progress.
func (c *Choreographer) Phase() Phase { return c.phase }

// ActiveIndex returns the index of the active waypoint, -1 before the first
// navigation.
func (c *Choreographer) ActiveIndex() int { return c.active }

// Current returns the active waypoint, if any.
func (c *Choreographer) Current() (content.WayPoint, bool) {
	if c.active < 0 || c.active >= len(c.waypoints) {
		return content.WayPoint{}, false
	}
	return c.waypoints[c.active], true
}

// GoTo starts a transition to the waypoint at index i. Out-of-range indexes
// are silently ignored. Re-entering the current index restarts the transition
// from the camera's live pose and fires OnEnter again. A GoTo issued while a
// transition is in flight cancels it: the endpoints are re-captured from the
// interpolated pose, never queued.
func (c *Choreographer) GoTo(i int) {
	if i < 0 || i >= len(c.waypoints) {
		return
	}
	wp := c.waypoints[i]

	fromPos, fromLook := c.cam.Pose()
	toLook := wp.Position.Add(geom.V(0, 0, -1))
	if wp.LookAt != nil {
		toLook = *wp.LookAt
	}

	c.tr = transition{
		fromPos:  fromPos,
		fromLook: fromLook,
		toPos:    wp.Position,
		toLook:   toLook,
	}
	c.phase = Transitioning
	c.active = i

	if wp.OnEnter != nil {
		wp.OnEnter()
	}
}

// Next advances to the following waypoint, clamped to the last one. At the
// boundary this re-enters the current waypoint.
func (c *Choreographer) Next() {
	if len(c.waypoints) == 0 {
		return
	}
	i := c.active + 1
	if i > len(c.waypoints)-1 {
		i = len(c.waypoints) - 1
	}
	c.GoTo(i)
}

// Prev moves to the preceding waypoint, clamped to the first one.
func (c *Choreographer) Prev() {
	if len(c.waypoints) == 0 {
		return
	}
	i := c.active - 1
	if i < 0 {
		i = 0
	}
	c.GoTo(i)
}

// Update advances the transition by deltaMs and writes the interpolated pose
// to the camera. When the transition completes the camera is set to the
// target pose exactly, leaving no easing residue.
func (c *Choreographer) Update(deltaMs float64) {
	if c.phase != Transitioning {
		return
	}

	c.tr.t += deltaMs / c.durationMs
	if c.tr.t >= 1 {
		c.cam.SetPose(c.tr.toPos, c.tr.toLook)
		c.phase = Idle
		c.tr = transition{}
		return
	}

	e := geom.Smoothstep(c.tr.t)
	c.cam.SetPose(
		geom.Lerp(c.tr.fromPos, c.tr.toPos, e),
		geom.Lerp(c.tr.fromLook, c.tr.toLook, e),
	)
}
