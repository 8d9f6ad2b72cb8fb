package skyisles

import (
	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

// IslandOverlaps reports whether candidate, in world space, touches the cached
// bounds of any island in the list. Island bounds are captured at creation and not
// refreshed while the island bobs; the vertical bob does not change horizontal overlap.
func IslandOverlaps(candidate core.AABB, islands []*Entity) bool {
	for _, island := range islands {
		if island.Kind != KindIsland {
			continue
		}
		if candidate.Intersects(island.Island.Bounds) {
			return true
		}
	}
	return false
}

// TreeTooClose reports whether any tree owned by island lies within minSpacing of
// candidate. candidate is in the island's local frame, as are the trees' positions,
// since trees are direct children of the island node.
func TreeTooClose(candidate mgl32.Vec3, island *Entity, minSpacing float32) bool {
	if island == nil || island.Kind != KindIsland {
		return false
	}
	for _, tree := range island.OwnedTrees() {
		if tree.Node.Transform.Position.Sub(candidate).Len() < minSpacing {
			return true
		}
	}
	return false
}
