package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCamera_PickRayThroughProjectedPoint(t *testing.T) {
	cam := NewCamera()
	cam.Position = mgl32.Vec3{0, 30, 20}
	cam.Target = mgl32.Vec3{0, 0, 0}

	for _, p := range []mgl32.Vec3{{0, 0, 0}, {4, 1, -3}, {-10, -0.1, 5}} {
		ndc, ok := cam.Project(p)
		if !ok {
			t.Fatalf("%v should be in front of the camera", p)
		}
		ray := cam.PickRay(ndc)

		// Closest point on the ray to p.
		closest := ray.At(p.Sub(ray.Origin).Dot(ray.Direction))
		if closest.Sub(p).Len() > 5e-2 {
			t.Errorf("ray through %v misses it by %v", p, closest.Sub(p).Len())
		}
	}
}

func TestCamera_CenterRayLooksAtTarget(t *testing.T) {
	cam := NewCamera()
	ray := cam.PickRay(mgl32.Vec2{0, 0})
	if !near(ray.Direction, cam.GetForward(), 1e-4) {
		t.Errorf("center ray %v, forward %v", ray.Direction, cam.GetForward())
	}
}

func TestCamera_ProjectBehind(t *testing.T) {
	cam := NewCamera()
	if _, ok := cam.Project(cam.Position.Sub(cam.GetForward().Mul(5))); ok {
		t.Errorf("point behind the camera should not project")
	}
}
