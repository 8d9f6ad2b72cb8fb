package skyisles

import (
	"math"
	"testing"
	"time"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitCamera_FromConfig(t *testing.T) {
	cfg := DefaultConfig().Camera
	orbit := NewOrbitCamera(cfg)
	cam := core.NewCamera()
	orbit.Apply(cam)

	assertVec3Near(t, mgl32.Vec3(cfg.Position), cam.Position, 1e-3, "got %v", cam.Position)
	assert.Equal(t, mgl32.Vec3(cfg.InitialFocus), cam.Target)
	assert.True(t, orbit.Enabled())
}

func TestOrbitCamera_Clamps(t *testing.T) {
	orbit := NewOrbitCamera(DefaultConfig().Camera)

	orbit.Orbit(0, 1e6)
	assert.InDelta(t, polarLimit, orbit.Polar, 1e-6)
	orbit.Orbit(0, -1e6)
	assert.InDelta(t, math.Pi-polarLimit, orbit.Polar, 1e-6)

	orbit.Zoom(1000)
	assert.Equal(t, orbit.MaxDistance, orbit.Distance)
	orbit.Zoom(-1000)
	assert.Equal(t, orbit.MinDistance, orbit.Distance)
}

func TestOrbitCamera_PanFollowsYaw(t *testing.T) {
	orbit := NewOrbitCamera(DefaultConfig().Camera)
	orbit.Focus = mgl32.Vec3{}
	orbit.Yaw = 0

	orbit.Pan(0, 1, 0)
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, orbit.Focus, 1e-4, "forward is -Z at yaw 0, got %v", orbit.Focus)

	orbit.Focus = mgl32.Vec3{}
	orbit.Pan(1, 0, 0.5)
	assertVec3Near(t, mgl32.Vec3{1, 0.5, 0}, orbit.Focus, 1e-4, "got %v", orbit.Focus)
}

func TestCameraControl_SuspendedWhileEditing(t *testing.T) {
	app := newTestApp(t, testConfig())
	input := Resource[Input](app)
	world := Resource[World](app)

	now := time.Unix(0, 0)
	tick := func() {
		now = now.Add(100 * time.Millisecond)
		app.Tick(now)
	}
	tick()

	world.Editor.Execute(SelectPlaceRock)
	before := world.Camera.Position
	input.SetKey(KeyW, true)
	tick()
	assert.Equal(t, before, world.Camera.Position)

	world.Editor.Execute(SelectView)
	tick()
	assert.NotEqual(t, before, world.Camera.Position)
}
