package skyisles

import (
	"testing"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func islandWithBounds(min, max mgl32.Vec3) *Entity {
	return &Entity{
		Kind:   KindIsland,
		Node:   core.NewNode("Island"),
		Island: &IslandData{Bounds: core.AABB{Min: min, Max: max}},
	}
}

func TestIslandOverlaps(t *testing.T) {
	existing := []*Entity{
		islandWithBounds(mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{5, 1, 5}),
		islandWithBounds(mgl32.Vec3{20, -5, -5}, mgl32.Vec3{30, 1, 5}),
	}

	cases := []struct {
		name      string
		candidate core.AABB
		want      bool
	}{
		{"full overlap", core.AABB{Min: mgl32.Vec3{-5, -5, -5}, Max: mgl32.Vec3{5, 1, 5}}, true},
		{"partial", core.AABB{Min: mgl32.Vec3{4, -5, -5}, Max: mgl32.Vec3{14, 1, 5}}, true},
		{"touching", core.AABB{Min: mgl32.Vec3{5, -5, -5}, Max: mgl32.Vec3{15, 1, 5}}, true},
		{"between", core.AABB{Min: mgl32.Vec3{7, -5, -5}, Max: mgl32.Vec3{17, 1, 5}}, false},
		{"far away", core.AABB{Min: mgl32.Vec3{-50, -5, -5}, Max: mgl32.Vec3{-40, 1, 5}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IslandOverlaps(tc.candidate, existing))
		})
	}

	assert.False(t, IslandOverlaps(cases[0].candidate, nil), "no islands, no overlap")
}

func TestTreeTooClose(t *testing.T) {
	island := islandWithBounds(mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{5, 1, 5})
	assert.False(t, TreeTooClose(mgl32.Vec3{0, 1.75, 0}, island, 1.5))

	tree := &Entity{Kind: KindTree, Node: core.NewNode("Tree"), Tree: &TreeData{}}
	tree.Node.Transform.Position = mgl32.Vec3{1, 1.75, 1}
	island.addChild(tree)
	rock := &Entity{Kind: KindRock, Node: core.NewNode("Rock"), Rock: &RockData{}}
	rock.Node.Transform.Position = mgl32.Vec3{3, 1.25, 1}
	island.addChild(rock)

	assert.True(t, TreeTooClose(mgl32.Vec3{1.5, 1.75, 1}, island, 1.5))
	assert.False(t, TreeTooClose(mgl32.Vec3{2.5, 1.75, 1}, island, 1.5), "exactly at the spacing is allowed")
	assert.False(t, TreeTooClose(mgl32.Vec3{3, 1.75, 1}, island, 1.5), "rocks do not count")
	assert.False(t, TreeTooClose(mgl32.Vec3{1, 1.75, 1}, nil, 1.5))
	assert.False(t, TreeTooClose(mgl32.Vec3{1, 1.75, 1}, tree, 1.5), "only islands own trees")
}
