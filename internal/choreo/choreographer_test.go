package choreo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/geom"
)

type fakeCamera struct {
	pos, look geom.Vec3
}

func (f *fakeCamera) Pose() (geom.Vec3, geom.Vec3) { return f.pos, f.look }
func (f *fakeCamera) SetPose(pos, look geom.Vec3) { f.pos, f.look = pos, look }

func lookAt(v geom.Vec3) *geom.Vec3 { return &v }

func newTestChoreographer(cam *fakeCamera) (*Choreographer, *int) {
	entered := 0
	c := New(cam)
	c.Add(content.WayPoint{ID: "a", Title: "A", Position: geom.V(0, 0, 0)})
	c.Add(content.WayPoint{
		ID:       "b",
		Title:    "B",
		Position: geom.V(10, 0, 0),
		LookAt:   lookAt(geom.V(10, 0, -5)),
		OnEnter:  func() { entered++ },
	})
	return c, &entered
}

func TestGoTo_OutOfRangeIgnored(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(1, 1, 1)}
	c, entered := newTestChoreographer(cam)

	c.GoTo(-1)
	c.GoTo(2)

	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, -1, c.ActiveIndex())
	assert.Zero(t, *entered)

	_, ok := c.Current()
	assert.False(t, ok)
}

func TestGoTo_StartsTransitionAndFiresOnEnter(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(5, 5, 5), look: geom.V(0, 0, 0)}
	c, entered := newTestChoreographer(cam)

	c.GoTo(1)

	assert.Equal(t, Transitioning, c.Phase())
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 1, *entered)

	// Camera untouched until the first Update.
	assert.Equal(t, geom.V(5, 5, 5), cam.pos)

	wp, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "b", wp.ID)
}

func TestGoTo_ReenterRestartsAndRefires(t *testing.T) {
	cam := &fakeCamera{}
	c, entered := newTestChoreographer(cam)

	c.GoTo(1)
	c.GoTo(1)

	assert.Equal(t, Transitioning, c.Phase())
	assert.Equal(t, 2, *entered, "OnEnter fires once per GoTo, including re-entry")
	assert.Zero(t, c.tr.t)
}

func TestGoTo_MidFlightCancelRecapturesLivePose(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(0, 0, 0)}
	c, _ := newTestChoreographer(cam)
	c.SetDuration(1000)

	c.GoTo(1)
	c.Update(500) // halfway through, eased pose written to camera

	midPos := cam.pos
	assert.NotEqual(t, geom.V(0, 0, 0), midPos)
	assert.NotEqual(t, geom.V(10, 0, 0), midPos)

	c.GoTo(0)
	assert.Equal(t, midPos, c.tr.fromPos, "new transition starts from the interpolated pose")
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestUpdate_ExactTerminalPose(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(3.3, -7.1, 0.2), look: geom.V(1, 1, 1)}
	c, _ := newTestChoreographer(cam)
	c.SetDuration(1000)

	c.GoTo(1)
	for i := 0; i < 100; i++ {
		c.Update(16.7)
	}

	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, geom.V(10, 0, 0), cam.pos, "terminal position must be exact")
	assert.Equal(t, geom.V(10, 0, -5), cam.look)
}

func TestUpdate_DefaultForwardLook(t *testing.T) {
	cam := &fakeCamera{}
	c, _ := newTestChoreographer(cam)

	c.GoTo(0) // waypoint "a" has no LookAt
	c.Update(DefaultDurationMs * 2)

	assert.Equal(t, geom.V(0, 0, -1), cam.look, "missing lookAt defaults to fixed forward")
}

func TestUpdate_IdleIsNoOp(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(1, 2, 3), look: geom.V(4, 5, 6)}
	c, _ := newTestChoreographer(cam)

	c.Update(100)

	assert.Equal(t, geom.V(1, 2, 3), cam.pos)
	assert.Equal(t, geom.V(4, 5, 6), cam.look)
}

func TestNextPrev_Clamping(t *testing.T) {
	cam := &fakeCamera{}
	c, entered := newTestChoreographer(cam)

	c.Next()
	assert.Equal(t, 0, c.ActiveIndex())

	c.Next()
	assert.Equal(t, 1, c.ActiveIndex())

	c.Next() // clamped: re-enters index 1
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 2, *entered, "boundary Next re-enters the last waypoint")

	c.Prev()
	assert.Equal(t, 0, c.ActiveIndex())

	c.Prev() // clamped: re-enters index 0
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestNextPrev_EmptyList(t *testing.T) {
	c := New(&fakeCamera{})
	c.Next()
	c.Prev()
	assert.Equal(t, -1, c.ActiveIndex())
}

func TestSetDuration_RejectsNonPositive(t *testing.T) {
	cam := &fakeCamera{}
	c, _ := newTestChoreographer(cam)

	c.SetDuration(0)
	c.SetDuration(-5)
	assert.Equal(t, float64(DefaultDurationMs), c.durationMs)

	c.SetDuration(300)
	assert.Equal(t, 300.0, c.durationMs)
}

func TestUpdate_MonotoneApproach(t *testing.T) {
	cam := &fakeCamera{pos: geom.V(0, 0, 0)}
	c, _ := newTestChoreographer(cam)
	c.SetDuration(1000)
	c.GoTo(1)

	target := geom.V(10, 0, 0)
	prev := cam.pos.Sub(target).Length()
	for i := 0; i < 10; i++ {
		c.Update(100)
		d := cam.pos.Sub(target).Length()
		if d > prev {
			t.Fatalf("distance to target increased at step %d: %v > %v", i, d, prev)
		}
		prev = d
	}
}
