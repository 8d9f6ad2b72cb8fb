package skyisles

import (
	"testing"
	"time"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStatsRenderer_CountsVisibleMeshes(t *testing.T) {
	w := NewWorld(testConfig(), nil, nil)
	r := NewFrameStatsRenderer(nil)

	r.Render(w.Scene, w.Camera)
	stats := r.Stats()
	assert.Equal(t, uint64(1), stats.Frames)
	assert.Zero(t, stats.VisibleMeshes, "the placement plane is invisible")
	assert.Equal(t, 1, stats.LiveGeometries)

	w.Lifecycle.Create(KindIsland, PoseAt(mgl32.Vec3{}), nil)
	hidden := core.NewMeshNode("hidden", w.Pool.NewGeometry(core.GeometryDesc{Primitive: core.PrimitiveIcosahedron, Radius: 1}), nil)
	hidden.Visible = false
	w.Scene.Add(hidden)

	r.Render(w.Scene, w.Camera)
	stats = r.Stats()
	assert.Equal(t, uint64(2), stats.Frames)
	assert.Equal(t, 2, stats.VisibleMeshes)
	assert.Equal(t, 4, stats.LiveGeometries)
}

type countingRenderer struct{ calls int }

func (r *countingRenderer) Render(*core.Scene, *core.Camera) { r.calls++ }

func TestRenderModule_RendersOncePerTick(t *testing.T) {
	r := &countingRenderer{}
	app := NewAppBuilder().
		UseModule(
			TimeModule{},
			WorldModule{Config: testConfig(), Empty: true},
			RenderModule{Name: "counting", Renderer: r},
		).
		Build()

	app.Tick(time.Unix(0, 0))
	app.Tick(time.Unix(1, 0))
	assert.Equal(t, 2, r.calls)

	tag := Resource[RendererTag](app)
	require.NotNil(t, tag)
	assert.Equal(t, "counting", tag.Name)
}

func TestRenderModule_SecondRendererPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAppBuilder().
			UseModule(
				RenderModule{Name: "a", Renderer: &countingRenderer{}},
				RenderModule{Name: "b", Renderer: &countingRenderer{}},
			).
			Build()
	})

	assert.NotPanics(t, func() {
		NewAppBuilder().
			UseModule(
				RenderModule{Name: "a", Renderer: &countingRenderer{}},
				RenderModule{Name: "a", Renderer: &countingRenderer{}},
			).
			Build()
	})
}
