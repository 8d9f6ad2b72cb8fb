package skyisles

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Part names used by the procedural meshes.
const (
	PartIslandTop     = "IslandTop"
	PartIslandBottom  = "IslandBottom"
	PartIslandCrystal = "IslandCrystal"
	PartTrunk         = "Trunk"
	PartCanopy        = "Canopy"
	PartRock          = "Rock"
	PartCloudPuff     = "CloudPuff"
)

var (
	islandTopDesc    = core.GeometryDesc{Primitive: core.PrimitiveCylinder, RadiusTop: 5, RadiusBottom: 4.5, Height: 2, Segments: 8}
	islandBottomDesc = core.GeometryDesc{Primitive: core.PrimitiveCone, Radius: 4.5, Height: 4, Segments: 8}
)

// ProceduralFactory builds low-poly islands, trees, rocks and clouds. Every call
// allocates its own geometry and materials so disposing one object never touches
// another.
type ProceduralFactory struct {
	pool      *core.ResourcePool
	rng       *rand.Rand
	palette   PaletteConfig
	animation AnimationConfig
	crystals  bool
}

func NewProceduralFactory(pool *core.ResourcePool, rng *rand.Rand, cfg Config) *ProceduralFactory {
	return &ProceduralFactory{
		pool:      pool,
		rng:       rng,
		palette:   cfg.Palette,
		animation: cfg.Animation,
		crystals:  cfg.Seed.IslandCrystals,
	}
}

// Configure swaps palette and animation tunables for objects built from now on.
func (f *ProceduralFactory) Configure(cfg Config) {
	f.palette = cfg.Palette
	f.animation = cfg.Animation
	f.crystals = cfg.Seed.IslandCrystals
}

func (f *ProceduralFactory) Construct(kind Kind, pose Pose) Construction {
	switch kind {
	case KindIsland:
		return f.island(pose)
	case KindTree:
		return f.tree(pose)
	case KindRock:
		return f.rock(pose)
	}
	panic(fmt.Sprintf("unknown entity kind %v", kind))
}

func (f *ProceduralFactory) ConstructPreview(kind Kind) *Preview {
	var node *core.Node
	switch kind {
	case KindIsland:
		node = core.NewNode("IslandGhost")
		top := f.ghostMesh(PartIslandTop, islandTopDesc)
		bottom := f.ghostMesh(PartIslandBottom, islandBottomDesc)
		bottom.Transform.Position = mgl32.Vec3{0, -3, 0}
		bottom.Transform.Rotation = mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0})
		node.Add(top)
		node.Add(bottom)
	case KindTree:
		node = core.NewNode("TreeGhost")
		trunk := f.ghostMesh(PartTrunk, core.GeometryDesc{Primitive: core.PrimitiveCylinder, RadiusTop: 0.2, RadiusBottom: 0.3, Height: 1.5, Segments: 5})
		canopy := f.ghostMesh(PartCanopy, core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: 1})
		canopy.Transform.Position = mgl32.Vec3{0, 1.5/2 + 1*0.7, 0}
		node.Add(trunk)
		node.Add(canopy)
	case KindRock:
		node = f.ghostMesh("RockGhost", core.GeometryDesc{Primitive: core.PrimitiveDodecahedron, Radius: 0.5})
	default:
		panic(fmt.Sprintf("unknown entity kind %v", kind))
	}

	normal := core.NewMaterialDesc(core.RGBA(f.palette.Ghost, 255), [4]uint8{})
	normal.Transparency = 0.4
	normal.DoubleSided = true
	blocked := core.NewMaterialDesc(core.RGBA(f.palette.Blocked, 255), [4]uint8{})
	blocked.Transparency = 0.3
	blocked.DoubleSided = true

	return NewPreview(kind, node, f.pool.NewMaterial(normal), f.pool.NewMaterial(blocked))
}

// CloudGroup builds a drifting cloud. Initial clouds spread over the sky; recycled
// ones start just past the right edge.
func (f *ProceduralFactory) CloudGroup(initial bool) Construction {
	const (
		xRange  = 120
		yRange  = 10
		yBase   = 15
		zRange  = 80
		zOffset = -30
	)
	group := core.NewNode("Cloud")
	puffs := 4 + f.rng.IntN(4)
	for i := 0; i < puffs; i++ {
		radius := f.between(1.0, 2.5)
		puff := f.mesh(PartCloudPuff, core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: radius}, f.palette.Cloud)
		puff.Mesh.Material.Desc.Transparency = 0.15
		puff.Transform.Position = mgl32.Vec3{
			(f.rng.Float32() - 0.5) * 4,
			(f.rng.Float32() - 0.5) * 1.5,
			(f.rng.Float32() - 0.5) * 3,
		}
		group.Add(puff)
	}

	x := (f.rng.Float32() - 0.5) * xRange
	if !initial {
		x = xRange/2 + f.rng.Float32()*10
	}
	z := (f.rng.Float32()-0.5)*zRange + zOffset
	group.Transform.Position = mgl32.Vec3{x, f.rng.Float32()*yRange + yBase, z}

	speed := f.between(0.05, 0.25)
	if f.rng.IntN(2) == 0 {
		speed = -speed
	}
	return Construction{
		Node: group,
		Animations: []AnimationRequest{{
			Target:   group,
			Behavior: BehaviorCloudDrift,
			Params:   AnimationParams{DriftSpeed: speed, InitialZ: z, WrapX: f.animation.CloudWrapX},
		}},
	}
}

func (f *ProceduralFactory) island(pose Pose) Construction {
	group := core.NewNode("Island")
	group.Transform = core.TransformAt(pose.Position, pose.Rotation)

	top := f.mesh(PartIslandTop, islandTopDesc, f.palette.Grass)
	group.Add(top)

	bottom := f.mesh(PartIslandBottom, islandBottomDesc, f.palette.Earth)
	bottom.Transform.Position = mgl32.Vec3{0, -3, 0}
	bottom.Transform.Rotation = mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0})
	group.Add(bottom)

	anims := []AnimationRequest{{
		Target:   group,
		Behavior: BehaviorIslandBob,
		Params: AnimationParams{
			InitialY:  pose.Position.Y(),
			BobSpeed:  f.between(f.animation.BobSpeedMin, f.animation.BobSpeedMax),
			BobAmount: f.between(f.animation.BobAmountMin, f.animation.BobAmountMax),
		},
	}}

	if f.crystals {
		crystal := f.mesh(PartIslandCrystal, core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: 0.8}, f.palette.Crystal)
		crystal.Mesh.Material.Desc.Emissive = core.RGBA(f.palette.Crystal, 255)
		crystal.Mesh.Material.Desc.EmissiveIntensity = 0.5
		crystal.Transform.Position = mgl32.Vec3{0, 1.5, 0}
		group.Add(crystal)
		anims = append(anims, AnimationRequest{Target: crystal, Behavior: BehaviorCrystalGlow})
	}

	return Construction{Node: group, Animations: anims}
}

func (f *ProceduralFactory) tree(pose Pose) Construction {
	group := core.NewNode("Tree")
	yaw := mgl32.QuatRotate(f.rng.Float32()*2*math.Pi, mgl32.Vec3{0, 1, 0})
	group.Transform = core.TransformAt(pose.Position, pose.Rotation.Mul(yaw))

	trunkHeight := f.between(1, 2)
	trunk := f.mesh(PartTrunk, core.GeometryDesc{Primitive: core.PrimitiveCylinder, RadiusTop: 0.2, RadiusBottom: 0.3, Height: trunkHeight, Segments: 5}, f.palette.Trunk)
	group.Add(trunk)

	canopyRadius := f.between(0.8, 1.3)
	canopy := f.mesh(PartCanopy, core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: canopyRadius}, f.palette.Leaves)
	canopy.Transform.Position = mgl32.Vec3{0, trunkHeight/2 + canopyRadius*0.7, 0}
	group.Add(canopy)

	return Construction{
		Node: group,
		Tree: &TreeData{TrunkHeight: trunkHeight, CanopyRadius: canopyRadius},
		Animations: []AnimationRequest{{
			Target:   canopy,
			Behavior: BehaviorTreeSway,
			Params: AnimationParams{
				SwaySpeed:  f.between(f.animation.SwaySpeedMin, f.animation.SwaySpeedMax),
				SwayAmount: f.between(f.animation.SwayAmountMin, f.animation.SwayAmountMax),
			},
		}},
	}
}

func (f *ProceduralFactory) rock(pose Pose) Construction {
	size := f.between(0.3, 0.7)
	rock := f.mesh(PartRock, core.GeometryDesc{Primitive: core.PrimitiveDodecahedron, Radius: size}, f.palette.Rock)
	tumble := core.EulerXYZ(f.rng.Float32()*math.Pi, f.rng.Float32()*math.Pi, f.rng.Float32()*math.Pi)
	rock.Transform = core.TransformAt(pose.Position, pose.Rotation.Mul(tumble))
	return Construction{Node: rock, Rock: &RockData{Size: size}}
}

func (f *ProceduralFactory) mesh(name string, desc core.GeometryDesc, color uint32) *core.Node {
	material := core.NewMaterialDesc(core.RGBA(color, 255), [4]uint8{})
	material.Roughness = 0.8
	return core.NewMeshNode(name, f.pool.NewGeometry(desc), f.pool.NewMaterial(material))
}

// ghostMesh leaves the material empty; NewPreview assigns the ghost materials.
func (f *ProceduralFactory) ghostMesh(name string, desc core.GeometryDesc) *core.Node {
	return core.NewMeshNode(name, f.pool.NewGeometry(desc), nil)
}

func (f *ProceduralFactory) between(lo, hi float32) float32 {
	return lo + f.rng.Float32()*(hi-lo)
}
