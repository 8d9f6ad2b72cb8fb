package core

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a drawable fragment: one geometry with one material.
type Mesh struct {
	Geometry *Geometry
	Material *Material
}

// Node is a scene graph node. The parent link is a non-owning back reference;
// children are owned. Add is the only way to link nodes, and a linked node cannot be
// moved under another parent, so the graph stays a tree.
type Node struct {
	Name      string
	Transform Transform
	Visible   bool
	Mesh      *Mesh

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: NewTransform(),
		Visible:   true,
	}
}

func NewMeshNode(name string, geometry *Geometry, material *Material) *Node {
	n := NewNode(name)
	n.Mesh = &Mesh{Geometry: geometry, Material: material}
	return n
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Add attaches child under n. Attaching a node that already has a parent panics.
func (n *Node) Add(child *Node) {
	if child == nil {
		return
	}
	if child.parent != nil {
		panic(fmt.Sprintf("node %q already attached to %q", child.Name, child.parent.Name))
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			panic(fmt.Sprintf("attaching %q under %q would create a cycle", child.Name, n.Name))
		}
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Detach unlinks n from its parent. It reports false if n was not attached.
func (n *Node) Detach() bool {
	p := n.parent
	if p == nil {
		return false
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
	return true
}

// Traverse walks the subtree depth-first, parents before children. Returning false
// from visit skips the node's children.
func (n *Node) Traverse(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Traverse(visit)
	}
}

// Meshes returns every mesh node in the subtree, n included.
func (n *Node) Meshes() []*Node {
	var out []*Node
	n.Traverse(func(c *Node) bool {
		if c.Mesh != nil {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node in the subtree with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// WorldMatrix composes local transforms from the root down to n.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Transform.ObjectToWorld()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.ObjectToWorld().Mul4(m)
	}
	return m
}

func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldToLocal converts a world-space point into n's local frame.
func (n *Node) WorldToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, n.WorldMatrix().Inv())
}

// LocalToWorld converts a point in n's local frame into world space.
func (n *Node) LocalToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, n.WorldMatrix())
}

// WorldBounds is the union of every mesh's local bounds mapped into world space.
func (n *Node) WorldBounds() AABB {
	out := EmptyAABB()
	for _, m := range n.Meshes() {
		out = out.Union(m.Mesh.Geometry.Bounds.Transform(m.WorldMatrix()))
	}
	return out
}

// SetMaterial replaces the material on every mesh in the subtree.
// The previous materials are not disposed.
func (n *Node) SetMaterial(mat *Material) {
	for _, m := range n.Meshes() {
		m.Mesh.Material = mat
	}
}

// Dispose releases geometry and materials of every mesh in the subtree.
func (n *Node) Dispose() {
	for _, m := range n.Meshes() {
		m.Mesh.Geometry.Dispose()
		m.Mesh.Material.Dispose()
	}
}
