package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Shape int

const (
	// ShapeBox is hit-tested against its local bounds.
	ShapeBox Shape = iota
	// ShapePlane is an XZ rectangle at local y=0, hit-tested analytically.
	ShapePlane
)

type Primitive string

const (
	PrimitiveCylinder     Primitive = "cylinder"
	PrimitiveCone         Primitive = "cone"
	PrimitiveIcosahedron  Primitive = "icosahedron"
	PrimitiveDodecahedron Primitive = "dodecahedron"
	PrimitivePlane        Primitive = "plane"
)

// GeometryDesc describes a procedural primitive. Unused fields are zero.
type GeometryDesc struct {
	Primitive    Primitive
	RadiusTop    float32
	RadiusBottom float32
	Height       float32
	Radius       float32
	Width        float32
	Depth        float32
	Segments     int
}

// Bounds returns the primitive's local axis-aligned bounds, centered on the origin
// the way the original primitives are.
func (d GeometryDesc) Bounds() AABB {
	switch d.Primitive {
	case PrimitiveCylinder:
		r := max(d.RadiusTop, d.RadiusBottom)
		return BoxAround(mgl32.Vec3{}, mgl32.Vec3{r, d.Height / 2, r})
	case PrimitiveCone:
		return BoxAround(mgl32.Vec3{}, mgl32.Vec3{d.Radius, d.Height / 2, d.Radius})
	case PrimitiveIcosahedron, PrimitiveDodecahedron:
		return BoxAround(mgl32.Vec3{}, mgl32.Vec3{d.Radius, d.Radius, d.Radius})
	case PrimitivePlane:
		return BoxAround(mgl32.Vec3{}, mgl32.Vec3{d.Width / 2, 0, d.Depth / 2})
	}
	return EmptyAABB()
}

func (d GeometryDesc) Shape() Shape {
	if d.Primitive == PrimitivePlane {
		return ShapePlane
	}
	return ShapeBox
}

// Geometry is a vertex/index buffer pair owned by exactly one mesh.
type Geometry struct {
	ID       uuid.UUID
	Desc     GeometryDesc
	Bounds   AABB
	pool     *ResourcePool
	disposed bool
}

func (g *Geometry) Shape() Shape { return g.Desc.Shape() }

func (g *Geometry) Disposed() bool { return g.disposed }

// Dispose releases the geometry. Repeated calls are no-ops.
func (g *Geometry) Dispose() {
	if g == nil || g.disposed {
		return
	}
	g.disposed = true
	g.pool.release(resourceGeometry, g.ID)
}
