package skyisles

import (
	"math"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

const polarLimit = 0.05

// OrbitCamera circles the camera around a focus point. Right-drag orbits, WASD or
// the arrow keys pan the focus, PageUp/PageDown raise and lower it, +/- zoom.
type OrbitCamera struct {
	Focus    mgl32.Vec3
	Distance float32
	Yaw      float32 // radians around +Y, 0 looks down -Z
	Polar    float32 // radians from +Y

	MoveSpeed   float32
	OrbitSpeed  float32
	MinDistance float32
	MaxDistance float32

	enabled bool
}

// NewOrbitCamera derives the orbit from the configured camera position and focus.
func NewOrbitCamera(cfg CameraConfig) *OrbitCamera {
	focus := mgl32.Vec3(cfg.InitialFocus)
	offset := mgl32.Vec3(cfg.Position).Sub(focus)
	o := &OrbitCamera{
		Focus:       focus,
		Distance:    offset.Len(),
		MoveSpeed:   cfg.MoveSpeed,
		OrbitSpeed:  cfg.OrbitSpeed,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		enabled:     true,
	}
	if o.Distance > 0 {
		o.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		o.Polar = float32(math.Acos(float64(offset.Y() / o.Distance)))
	}
	o.clamp()
	return o
}

// SetNavigationEnabled implements Navigator.
func (o *OrbitCamera) SetNavigationEnabled(enabled bool) { o.enabled = enabled }

func (o *OrbitCamera) Enabled() bool { return o.enabled }

// Orbit rotates by pixel deltas.
func (o *OrbitCamera) Orbit(dx, dy float32) {
	o.Yaw -= dx * o.OrbitSpeed
	o.Polar -= dy * o.OrbitSpeed
	o.clamp()
}

// Pan moves the focus; right and forward are along the camera's ground-projected
// axes.
func (o *OrbitCamera) Pan(right, forward, up float32) {
	fwd := mgl32.Vec3{-sin(o.Yaw), 0, -cos(o.Yaw)}
	side := mgl32.Vec3{cos(o.Yaw), 0, -sin(o.Yaw)}
	o.Focus = o.Focus.Add(side.Mul(right)).Add(fwd.Mul(forward)).Add(mgl32.Vec3{0, up, 0})
}

func (o *OrbitCamera) Zoom(delta float32) {
	o.Distance += delta
	o.clamp()
}

// Apply writes the orbit into cam.
func (o *OrbitCamera) Apply(cam *core.Camera) {
	offset := mgl32.Vec3{
		o.Distance * sin(o.Polar) * sin(o.Yaw),
		o.Distance * cos(o.Polar),
		o.Distance * sin(o.Polar) * cos(o.Yaw),
	}
	cam.Position = o.Focus.Add(offset)
	cam.Target = o.Focus
	cam.Up = mgl32.Vec3{0, 1, 0}
}

func (o *OrbitCamera) clamp() {
	o.Polar = mgl32.Clamp(o.Polar, polarLimit, math.Pi-polarLimit)
	if o.MaxDistance > 0 {
		o.Distance = mgl32.Clamp(o.Distance, o.MinDistance, o.MaxDistance)
	}
}

type CameraControlModule struct{}

func (m CameraControlModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(orbitCameraSystem).
			InStage(Update),
	)
}

func orbitCameraSystem(input *Input, t *Time, orbit *OrbitCamera, cam *core.Camera) {
	if orbit.enabled {
		if input.Pressed[MouseButtonRight] {
			orbit.Orbit(float32(input.MouseDeltaX), float32(input.MouseDeltaY))
		}

		var right, forward, up float32
		if input.Pressed[KeyW] || input.Pressed[KeyUp] {
			forward += 1
		}
		if input.Pressed[KeyS] || input.Pressed[KeyDown] {
			forward -= 1
		}
		if input.Pressed[KeyD] || input.Pressed[KeyRight] {
			right += 1
		}
		if input.Pressed[KeyA] || input.Pressed[KeyLeft] {
			right -= 1
		}
		if input.Pressed[KeyPageUp] {
			up += 1
		}
		if input.Pressed[KeyPageDown] {
			up -= 1
		}
		step := orbit.MoveSpeed * t.Dt
		orbit.Pan(right*step, forward*step, up*step)

		if input.Pressed[KeyEqual] || input.Pressed[KeyKPPlus] {
			orbit.Zoom(-step)
		}
		if input.Pressed[KeyMinus] || input.Pressed[KeyKPMinus] {
			orbit.Zoom(step)
		}
	}
	orbit.Apply(cam)
}
