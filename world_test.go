package skyisles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_Populate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed.RandomSeed = 3
	w := NewWorld(cfg, nil, nil)
	w.Populate()

	islands := w.Registry.Islands()
	require.Len(t, islands, 1)
	island := islands[0]
	assert.Nil(t, island.Parent())

	trees := w.Registry.Trees()
	require.Len(t, trees, 2)
	for _, tree := range trees {
		assert.Same(t, island, tree.Parent())
		assert.True(t, island.Node.IsAncestorOf(tree.Node))
	}
	gap := trees[0].Node.Transform.Position.Sub(trees[1].Node.Transform.Position).Len()
	assert.GreaterOrEqual(t, gap, cfg.Editor.TreeMinSpacing)

	assert.Len(t, w.Clouds, 5)
	for _, cloud := range w.Clouds {
		assert.True(t, w.Scene.Contains(cloud))
		assert.True(t, w.Animations.Registered(cloud))
		assert.Nil(t, w.Registry.Owner(cloud), "clouds are not placeable objects")
	}
	assert.True(t, w.Animations.Registered(w.Scene.Sun))
	assert.True(t, w.Animations.Registered(island.Node))
	assert.Equal(t, ModeView, w.Editor.Mode())
}

func TestWorld_RemovingSeedIslandCleansUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed.Clouds = 0
	w := NewWorld(cfg, nil, nil)
	w.Populate()
	baseGeometries, baseMaterials := 1, 1 // the placement plane

	island := w.Registry.Islands()[0]
	w.Lifecycle.Remove(island)

	assert.Zero(t, w.Registry.Len())
	assert.Equal(t, 1, w.Animations.Len(), "only the sun orbit remains")
	geometries, materials := w.Pool.Live()
	assert.Equal(t, baseGeometries, geometries)
	assert.Equal(t, baseMaterials, materials)
}

func TestWorld_ApplyConfig(t *testing.T) {
	w := NewWorld(testConfig(), nil, nil)

	next := DefaultConfig()
	next.Editor.TreeMinSpacing = 3
	next.Editor.TreeClearance = 1
	next.Camera.MoveSpeed = 30
	next.Window.Width = 640
	w.ApplyConfig(next)

	assert.Equal(t, float32(3), w.Config.Editor.TreeMinSpacing)
	assert.Equal(t, float32(1), w.Config.Editor.TreeClearance)
	assert.Equal(t, float32(30), w.Orbit.MoveSpeed)
	assert.Equal(t, 1280, w.Config.Window.Width, "window size only changes on restart")
}

func TestConfigReloadModule_AppliesPendingConfigs(t *testing.T) {
	updates := make(chan Config, 2)
	app := NewAppBuilder().
		UseModule(
			LoggingModule{Logger: NewNopLogger()},
			TimeModule{},
			WorldModule{Config: testConfig(), Empty: true},
			ConfigReloadModule{Updates: updates},
		).
		Build()
	w := Resource[World](app)
	require.NotNil(t, w)

	first := testConfig()
	first.Editor.TreeMinSpacing = 2
	second := testConfig()
	second.Editor.TreeMinSpacing = 4
	updates <- first
	updates <- second

	app.Tick(time.Unix(0, 0))
	assert.Equal(t, float32(4), w.Config.Editor.TreeMinSpacing)

	close(updates)
	assert.NotPanics(t, func() {
		app.Tick(time.Unix(1, 0))
		app.Tick(time.Unix(2, 0))
	})
}
