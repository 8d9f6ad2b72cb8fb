package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	GroundName = "PlacementPlane"
	RootName   = "Scene"
)

// Scene owns the graph root, the invisible placement plane and the sun light.
type Scene struct {
	Root   *Node
	Ground *Node
	Sun    *Node
	Pool   *ResourcePool
}

// NewScene builds an empty scene whose ground plane lies at groundLevel and spans
// groundSize units on X and Z.
func NewScene(pool *ResourcePool, groundLevel, groundSize float32) *Scene {
	root := NewNode(RootName)

	ground := NewMeshNode(GroundName,
		pool.NewGeometry(GeometryDesc{Primitive: PrimitivePlane, Width: groundSize, Depth: groundSize}),
		pool.NewMaterial(MaterialDesc{DoubleSided: true}),
	)
	ground.Visible = false
	ground.Transform.Position = mgl32.Vec3{0, groundLevel, 0}
	root.Add(ground)

	sun := NewNode("Sun")
	sun.Transform.Position = mgl32.Vec3{10, 15, 10}
	root.Add(sun)

	return &Scene{
		Root:   root,
		Ground: ground,
		Sun:    sun,
		Pool:   pool,
	}
}

func (s *Scene) Add(n *Node) { s.Root.Add(n) }

// Contains reports whether n is currently reachable from the root.
func (s *Scene) Contains(n *Node) bool {
	return n == s.Root || s.Root.IsAncestorOf(n)
}
