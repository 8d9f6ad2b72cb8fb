package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transformed maps the ray through m. The direction is not renormalized, so a
// parameter t keeps addressing the same point in both spaces.
func (r Ray) Transformed(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin.Vec4(1.0)).Vec3(),
		Direction: m.Mul4x1(r.Direction.Vec4(0.0)).Vec3(),
	}
}

// IntersectAABB runs a slab test and returns the entry distance along the ray.
// A ray starting inside the box reports t=0.
func (r Ray) IntersectAABB(box AABB) (float32, bool) {
	if box.IsEmpty() {
		return 0, false
	}
	tMin := float32(0)
	tMax := float32(math.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if math.Abs(float64(d)) < 1e-12 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / d
		t1 := (box.Min[axis] - o) * inv
		t2 := (box.Max[axis] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectPlane returns the distance to the plane through point with the given
// normal. Rays parallel to the plane or pointing away from it miss.
func (r Ray) IntersectPlane(point, normal mgl32.Vec3) (float32, bool) {
	denom := r.Direction.Dot(normal)
	if math.Abs(float64(denom)) < 1e-6 {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
