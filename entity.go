package skyisles

import (
	"fmt"
	"slices"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Kind int

const (
	KindIsland Kind = iota
	KindTree
	KindRock
)

func (k Kind) String() string {
	switch k {
	case KindIsland:
		return "island"
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pose is a placement position and orientation in the parent's frame.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func PoseAt(position mgl32.Vec3) Pose {
	return Pose{Position: position, Rotation: mgl32.QuatIdent()}
}

// IslandData is the island payload. Bounds are world-space and fixed at creation.
type IslandData struct {
	Bounds   core.AABB
	Children []*Entity
}

type TreeData struct {
	TrunkHeight  float32
	CanopyRadius float32
}

type RockData struct {
	Size float32
}

// Entity is a placed island, tree or rock. Exactly one of the payload pointers is set,
// matching Kind.
type Entity struct {
	ID   uuid.UUID
	Kind Kind
	Node *core.Node

	Island *IslandData
	Tree   *TreeData
	Rock   *RockData

	parent  *Entity
	removed bool
}

// Parent returns the owning island, or nil when the entity hangs off the scene root.
func (e *Entity) Parent() *Entity { return e.parent }

func (e *Entity) Removed() bool { return e.removed }

// Children returns the trees and rocks owned by an island; nil for other kinds.
func (e *Entity) Children() []*Entity {
	switch e.Kind {
	case KindIsland:
		return slices.Clone(e.Island.Children)
	case KindTree, KindRock:
		return nil
	}
	panic(fmt.Sprintf("unknown entity kind %v", e.Kind))
}

// OwnedTrees returns the island's trees in placement order.
func (e *Entity) OwnedTrees() []*Entity {
	if e.Kind != KindIsland {
		return nil
	}
	var out []*Entity
	for _, c := range e.Island.Children {
		if c.Kind == KindTree {
			out = append(out, c)
		}
	}
	return out
}

// Fragments returns the entity's own mesh nodes, stopping at nested entities.
// isEntity identifies the root node of any other entity.
func (e *Entity) Fragments(isEntity func(*core.Node) bool) []*core.Node {
	var out []*core.Node
	e.Node.Traverse(func(n *core.Node) bool {
		if n != e.Node && isEntity(n) {
			return false
		}
		if n.Mesh != nil {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (e *Entity) WorldPosition() mgl32.Vec3 {
	return e.Node.WorldPosition()
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s/%s", e.Kind, e.ID.String()[:8])
}

func (e *Entity) addChild(child *Entity) {
	e.Island.Children = append(e.Island.Children, child)
	child.parent = e
}

func (e *Entity) removeChild(child *Entity) {
	if e.Kind != KindIsland {
		return
	}
	if i := slices.Index(e.Island.Children, child); i >= 0 {
		e.Island.Children = slices.Delete(e.Island.Children, i, i+1)
	}
}
