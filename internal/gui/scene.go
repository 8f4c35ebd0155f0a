package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/geom"
)

// Scene holds the static stage around the tour: a ground grid, one marker
// per waypoint, and the named anchor table panels can attach to.
type Scene struct {
	waypoints []content.WayPoint
	anchors   map[string]geom.Vec3
}

func NewScene(waypoints []content.WayPoint, anchors map[string][3]float64) *Scene {
	s := &Scene{
		waypoints: waypoints,
		anchors:   make(map[string]geom.Vec3, len(anchors)),
	}
	for name, p := range anchors {
		s.anchors[name] = geom.V(p[0], p[1], p[2])
	}
	return s
}

// Resolve is the anchor resolver handed to the panel renderer. Unknown ids
// return false so the panel falls back to its static target.
func (s *Scene) Resolve(anchorID string, out *geom.Vec3) bool {
	pos, ok := s.anchors[anchorID]
	if !ok {
		return false
	}
	*out = pos
	return true
}

// Draw renders the stage inside an active 3D mode.
func (s *Scene) Draw(activeIndex int) {
	rl.DrawGrid(40, 1.0)

	for i, wp := range s.waypoints {
		pos := toRL(wp.Position)
		if i == activeIndex {
			rl.DrawSphere(pos, 0.25, colSelect)
		} else {
			rl.DrawSphereWires(pos, 0.2, 6, 6, colTextDim)
		}
	}

	for _, pos := range s.anchors {
		rl.DrawSphereWires(toRL(pos), 0.15, 6, 6, colAccent)
	}
}

func toRL(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
