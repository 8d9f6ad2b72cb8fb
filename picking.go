package skyisles

import (
	"math"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

type Hit struct {
	Point    mgl32.Vec3
	Fragment *core.Node
	Distance float32
}

// Resolver turns pointer coordinates into world-space hits against a target set.
type Resolver struct {
	Camera *core.Camera
}

func NewResolver(camera *core.Camera) *Resolver {
	return &Resolver{Camera: camera}
}

func (r *Resolver) Ray(ndc mgl32.Vec2) core.Ray {
	return r.Camera.PickRay(ndc)
}

// Resolve casts the pointer ray against targets.
func (r *Resolver) Resolve(ndc mgl32.Vec2, targets []*core.Node) (Hit, bool) {
	return Pick(r.Ray(ndc), targets)
}

// Pick returns the nearest hit among targets. Nodes without a mesh are skipped and
// an empty target set never hits.
func Pick(ray core.Ray, targets []*core.Node) (Hit, bool) {
	best := Hit{Distance: float32(math.MaxFloat32)}
	found := false

	for _, target := range targets {
		if target == nil || target.Mesh == nil {
			continue
		}
		point, ok := intersectFragment(ray, target)
		if !ok {
			continue
		}
		dist := point.Sub(ray.Origin).Len()
		if dist < best.Distance {
			best = Hit{Point: point, Fragment: target, Distance: dist}
			found = true
		}
	}
	return best, found
}

func intersectFragment(ray core.Ray, fragment *core.Node) (mgl32.Vec3, bool) {
	geometry := fragment.Mesh.Geometry
	o2w := fragment.WorldMatrix()

	switch geometry.Shape() {
	case core.ShapePlane:
		// Plane lies in the fragment's local XZ plane.
		normal := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, o2w).Normalize()
		t, ok := ray.IntersectPlane(o2w.Col(3).Vec3(), normal)
		if !ok {
			return mgl32.Vec3{}, false
		}
		p := ray.At(t)
		local := mgl32.TransformCoordinate(p, o2w.Inv())
		b := geometry.Bounds
		if local.X() < b.Min.X() || local.X() > b.Max.X() || local.Z() < b.Min.Z() || local.Z() > b.Max.Z() {
			return mgl32.Vec3{}, false
		}
		return p, true

	case core.ShapeBox:
		// Narrow phase in fragment space, then back to world.
		local := ray.Transformed(o2w.Inv())
		t, ok := local.IntersectAABB(geometry.Bounds)
		if !ok {
			return mgl32.Vec3{}, false
		}
		return mgl32.TransformCoordinate(local.At(t), o2w), true
	}
	return mgl32.Vec3{}, false
}
