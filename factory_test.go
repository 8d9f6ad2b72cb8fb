package skyisles

import (
	"math/rand/v2"
	"testing"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory() (*ProceduralFactory, *core.ResourcePool) {
	pool := core.NewResourcePool()
	rng := rand.New(rand.NewPCG(7, 7))
	return NewProceduralFactory(pool, rng, DefaultConfig()), pool
}

func TestFactory_FreshResourcesPerCall(t *testing.T) {
	f, pool := newTestFactory()

	a := f.Construct(KindTree, PoseAt(mgl32.Vec3{}))
	b := f.Construct(KindTree, PoseAt(mgl32.Vec3{}))

	seen := map[string]bool{}
	for _, c := range []Construction{a, b} {
		for _, m := range c.Node.Meshes() {
			assert.False(t, seen[m.Mesh.Geometry.ID.String()], "geometry shared")
			assert.False(t, seen[m.Mesh.Material.ID.String()], "material shared")
			seen[m.Mesh.Geometry.ID.String()] = true
			seen[m.Mesh.Material.ID.String()] = true
		}
	}

	a.Node.Dispose()
	for _, m := range b.Node.Meshes() {
		assert.False(t, m.Mesh.Geometry.Disposed())
		assert.False(t, m.Mesh.Material.Disposed())
	}
	geometries, materials := pool.Live()
	assert.Equal(t, 2, geometries)
	assert.Equal(t, 2, materials)
}

func TestFactory_IslandShape(t *testing.T) {
	f, _ := newTestFactory()

	c := f.Construct(KindIsland, PoseAt(mgl32.Vec3{}))
	require.NotNil(t, c.Node.Find(PartIslandTop))
	require.NotNil(t, c.Node.Find(PartIslandBottom))
	assert.Nil(t, c.Node.Find(PartIslandCrystal))

	bounds := c.Node.WorldBounds()
	assert.InDelta(t, -5, bounds.Min.X(), 1e-3)
	assert.InDelta(t, 5, bounds.Max.X(), 1e-3)
	assert.InDelta(t, -5, bounds.Min.Y(), 1e-3)
	assert.InDelta(t, 1, bounds.Max.Y(), 1e-3)

	require.Len(t, c.Animations, 1)
	assert.Equal(t, BehaviorIslandBob, c.Animations[0].Behavior)
	assert.Same(t, c.Node, c.Animations[0].Target)
}

func TestFactory_IslandCrystals(t *testing.T) {
	f, _ := newTestFactory()
	cfg := DefaultConfig()
	cfg.Seed.IslandCrystals = true
	f.Configure(cfg)

	c := f.Construct(KindIsland, PoseAt(mgl32.Vec3{}))
	crystal := c.Node.Find(PartIslandCrystal)
	require.NotNil(t, crystal)
	require.Len(t, c.Animations, 2)
	assert.Equal(t, BehaviorCrystalGlow, c.Animations[1].Behavior)
	assert.Same(t, crystal, c.Animations[1].Target)
}

func TestFactory_TreeAndRockPayloads(t *testing.T) {
	f, _ := newTestFactory()

	tree := f.Construct(KindTree, PoseAt(mgl32.Vec3{}))
	require.NotNil(t, tree.Tree)
	assert.GreaterOrEqual(t, tree.Tree.TrunkHeight, float32(1))
	assert.Less(t, tree.Tree.TrunkHeight, float32(2))
	assert.GreaterOrEqual(t, tree.Tree.CanopyRadius, float32(0.8))
	assert.Less(t, tree.Tree.CanopyRadius, float32(1.3))
	require.Len(t, tree.Animations, 1)
	assert.Same(t, tree.Node.Find(PartCanopy), tree.Animations[0].Target)

	rock := f.Construct(KindRock, PoseAt(mgl32.Vec3{}))
	require.NotNil(t, rock.Rock)
	assert.GreaterOrEqual(t, rock.Rock.Size, float32(0.3))
	assert.Less(t, rock.Rock.Size, float32(0.7))
	assert.Empty(t, rock.Animations)
	assert.NotNil(t, rock.Node.Mesh)
}

func TestFactory_PreviewStartsHiddenWithGhostMaterial(t *testing.T) {
	f, pool := newTestFactory()

	for _, kind := range []Kind{KindIsland, KindTree, KindRock} {
		p := f.ConstructPreview(kind)
		assert.Equal(t, kind, p.Kind)
		assert.False(t, p.Visible(), kind.String())
		assert.False(t, p.Legal(), kind.String())
		for _, m := range p.Node.Meshes() {
			assert.Same(t, p.normal, m.Mesh.Material)
			assert.True(t, m.Mesh.Material.Desc.Transparency > 0)
		}
		p.destroy()
	}

	geometries, materials := pool.Live()
	assert.Zero(t, geometries)
	assert.Zero(t, materials)
}

func TestFactory_CloudGroup(t *testing.T) {
	f, _ := newTestFactory()

	for i := 0; i < 10; i++ {
		c := f.CloudGroup(false)
		puffs := len(c.Node.Meshes())
		assert.GreaterOrEqual(t, puffs, 4)
		assert.LessOrEqual(t, puffs, 7)
		assert.GreaterOrEqual(t, c.Node.Transform.Position.X(), float32(60))
		require.Len(t, c.Animations, 1)
		assert.Equal(t, BehaviorCloudDrift, c.Animations[0].Behavior)
		assert.NotZero(t, c.Animations[0].Params.DriftSpeed)
	}
}

func TestFactory_UnknownKindPanics(t *testing.T) {
	f, _ := newTestFactory()
	assert.Panics(t, func() { f.Construct(Kind(99), PoseAt(mgl32.Vec3{})) })
}
