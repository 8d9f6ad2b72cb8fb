package skyisles

import (
	"fmt"
	"slices"

	"github.com/gekko3d/skyisles/core"
)

// Registry is the authoritative list of placed entities, one insertion-ordered
// collection per kind. Islands are also kept in a spatial hash grid for overlap
// broadphase.
type Registry struct {
	islands []*Entity
	trees   []*Entity
	rocks   []*Entity

	byNode map[*core.Node]*Entity
	grid   *SpatialHashGrid
}

func NewRegistry(cellSize float32) *Registry {
	return &Registry{
		byNode: make(map[*core.Node]*Entity),
		grid:   NewSpatialHashGrid(cellSize),
	}
}

// Add registers e under its kind. Adding an entity twice is a no-op.
func (r *Registry) Add(e *Entity) {
	if e == nil || r.Contains(e) {
		return
	}
	switch e.Kind {
	case KindIsland:
		r.islands = append(r.islands, e)
		r.grid.Insert(e.ID, e.Island.Bounds)
	case KindTree:
		r.trees = append(r.trees, e)
	case KindRock:
		r.rocks = append(r.rocks, e)
	default:
		panic(fmt.Sprintf("unknown entity kind %v", e.Kind))
	}
	r.byNode[e.Node] = e
}

// Remove unregisters e. Removing an absent entity is a no-op.
func (r *Registry) Remove(e *Entity) {
	if e == nil || !r.Contains(e) {
		return
	}
	switch e.Kind {
	case KindIsland:
		r.islands = deleteEntity(r.islands, e)
		r.grid.Remove(e.ID)
	case KindTree:
		r.trees = deleteEntity(r.trees, e)
	case KindRock:
		r.rocks = deleteEntity(r.rocks, e)
	default:
		panic(fmt.Sprintf("unknown entity kind %v", e.Kind))
	}
	delete(r.byNode, e.Node)
}

func (r *Registry) Contains(e *Entity) bool {
	if e == nil {
		return false
	}
	return r.byNode[e.Node] == e
}

func (r *Registry) Islands() []*Entity { return slices.Clone(r.islands) }
func (r *Registry) Trees() []*Entity   { return slices.Clone(r.trees) }
func (r *Registry) Rocks() []*Entity   { return slices.Clone(r.rocks) }

// All returns islands, then trees, then rocks.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, r.Len())
	out = append(out, r.islands...)
	out = append(out, r.trees...)
	return append(out, r.rocks...)
}

func (r *Registry) Len() int {
	return len(r.islands) + len(r.trees) + len(r.rocks)
}

// IsEntityNode reports whether n is the root node of a registered entity.
func (r *Registry) IsEntityNode(n *core.Node) bool {
	_, ok := r.byNode[n]
	return ok
}

// Owner walks up from a fragment to the first registered entity. It returns nil for
// fragments with no placeable ancestor, such as the ground plane or a preview.
func (r *Registry) Owner(fragment *core.Node) *Entity {
	for n := fragment; n != nil; n = n.Parent() {
		if e, ok := r.byNode[n]; ok {
			return e
		}
	}
	return nil
}

// IslandsNear returns registered islands whose grid cells touch aabb.
func (r *Registry) IslandsNear(aabb core.AABB) []*Entity {
	ids := r.grid.QueryAABB(aabb)
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Entity, 0, len(ids))
	for _, island := range r.islands {
		if slices.Contains(ids, island.ID) {
			out = append(out, island)
		}
	}
	return out
}

// IslandSurfaces returns the mesh fragments of every island, excluding anything
// placed on them.
func (r *Registry) IslandSurfaces() []*core.Node {
	var out []*core.Node
	for _, island := range r.islands {
		out = append(out, island.Fragments(r.IsEntityNode)...)
	}
	return out
}

// AllFragments returns the mesh fragments of every registered entity. Each fragment
// appears once, under its nearest owning entity.
func (r *Registry) AllFragments() []*core.Node {
	var out []*core.Node
	for _, e := range r.All() {
		out = append(out, e.Fragments(r.IsEntityNode)...)
	}
	return out
}

func deleteEntity(list []*Entity, e *Entity) []*Entity {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
