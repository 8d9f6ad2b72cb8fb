package skyisles

import (
	"testing"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxFragment(pool *core.ResourcePool, name string, center mgl32.Vec3, radius float32) *core.Node {
	n := core.NewMeshNode(name,
		pool.NewGeometry(core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: radius}),
		pool.NewMaterial(core.NewMaterialDesc(core.RGBA(0xFFFFFF, 255), [4]uint8{})),
	)
	n.Transform.Position = center
	return n
}

func TestPick_Nearest(t *testing.T) {
	pool := core.NewResourcePool()
	near := boxFragment(pool, "near", mgl32.Vec3{0, 0, 5}, 1)
	far := boxFragment(pool, "far", mgl32.Vec3{0, 0, -5}, 1)
	ray := core.Ray{Origin: mgl32.Vec3{0, 0, 20}, Direction: mgl32.Vec3{0, 0, -1}}

	hit, ok := Pick(ray, []*core.Node{far, near})
	require.True(t, ok)
	assert.Same(t, near, hit.Fragment)
	assert.InDelta(t, 14, hit.Distance, 1e-4)
	assertVec3Near(t, mgl32.Vec3{0, 0, 6}, hit.Point, 1e-4)
}

func TestPick_Misses(t *testing.T) {
	pool := core.NewResourcePool()
	box := boxFragment(pool, "box", mgl32.Vec3{}, 1)
	ray := core.Ray{Origin: mgl32.Vec3{0, 5, 20}, Direction: mgl32.Vec3{0, 0, -1}}

	_, ok := Pick(ray, []*core.Node{box})
	assert.False(t, ok)

	_, ok = Pick(ray, nil)
	assert.False(t, ok, "empty target set never hits")

	_, ok = Pick(ray, []*core.Node{core.NewNode("group")})
	assert.False(t, ok, "nodes without a mesh are skipped")
}

func TestPick_RotatedParent(t *testing.T) {
	pool := core.NewResourcePool()
	parent := core.NewNode("parent")
	parent.Transform.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	// The child sits at local +X, which the parent turns to world -Z.
	child := core.NewMeshNode("plank",
		pool.NewGeometry(core.GeometryDesc{Primitive: core.PrimitiveCylinder, RadiusTop: 0.2, RadiusBottom: 0.2, Height: 0.4}),
		nil,
	)
	child.Transform.Position = mgl32.Vec3{3, 0, 0}
	parent.Add(child)

	ray := core.Ray{Origin: mgl32.Vec3{0, 10, -3}, Direction: mgl32.Vec3{0, -1, 0}}
	hit, ok := Pick(ray, []*core.Node{child})
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{0, 0.2, -3}, hit.Point, 1e-4)
}

func TestPick_BoundedPlane(t *testing.T) {
	pool := core.NewResourcePool()
	scene := core.NewScene(pool, -0.1, 200)

	down := core.Ray{Origin: mgl32.Vec3{10, 20, 10}, Direction: mgl32.Vec3{0, -1, 0}}
	hit, ok := Pick(down, []*core.Node{scene.Ground})
	require.True(t, ok)
	assert.Same(t, scene.Ground, hit.Fragment)
	assertVec3Near(t, mgl32.Vec3{10, -0.1, 10}, hit.Point, 1e-4)

	outside := core.Ray{Origin: mgl32.Vec3{150, 20, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	_, ok = Pick(outside, []*core.Node{scene.Ground})
	assert.False(t, ok, "the plane ends at half its size")
}

func TestResolver_UsesCamera(t *testing.T) {
	pool := core.NewResourcePool()
	box := boxFragment(pool, "box", mgl32.Vec3{3, 1, -2}, 0.5)
	cam := core.NewCamera()
	resolver := NewResolver(cam)

	ndc, ok := cam.Project(mgl32.Vec3{3, 1, -2})
	require.True(t, ok)
	hit, ok := resolver.Resolve(ndc, []*core.Node{box})
	require.True(t, ok)
	assert.Same(t, box, hit.Fragment)

	_, ok = resolver.Resolve(mgl32.Vec2{-0.9, 0.9}, []*core.Node{box})
	assert.False(t, ok)
}
