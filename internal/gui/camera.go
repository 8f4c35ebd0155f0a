package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/iver-m/waytour/internal/geom"
)

// tourCamera adapts a raylib camera to the choreographer's Camera interface.
// The choreographer receives it through the App constructor; nothing reaches
// the camera through globals.
type tourCamera struct {
	cam *rl.Camera3D
}

func (t *tourCamera) Pose() (geom.Vec3, geom.Vec3) {
	return fromRL(t.cam.Position), fromRL(t.cam.Target)
}

func (t *tourCamera) SetPose(pos, look geom.Vec3) {
	t.cam.Position = toRL(pos)
	t.cam.Target = toRL(look)
}

func fromRL(v rl.Vector3) geom.Vec3 {
	return geom.V(float64(v.X), float64(v.Y), float64(v.Z))
}
