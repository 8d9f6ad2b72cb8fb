package skyisles

import (
	"fmt"

	"github.com/gekko3d/skyisles/core"
)

// RendererTag marks that a renderer has been installed into the App.
// Only one renderer should be installed at a time.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer panics if a renderer with a different name is already installed.
func ensureSingleRenderer(app *App, name string) {
	if tag := Resource[RendererTag](app); tag != nil {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

// RenderModule calls Renderer once per frame in the Render stage.
type RenderModule struct {
	Name     string
	Renderer Renderer
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	name := m.Name
	if name == "" {
		name = fmt.Sprintf("%T", m.Renderer)
	}
	ensureSingleRenderer(app, name)

	r := m.Renderer
	app.UseSystem(
		System(func(scene *core.Scene, camera *core.Camera) {
			r.Render(scene, camera)
		}).InStage(Render),
	)
}

// FrameStats is what FrameStatsRenderer saw in the last frame.
type FrameStats struct {
	Frames         uint64
	VisibleMeshes  int
	LiveGeometries int
	LiveMaterials  int
}

// FrameStatsRenderer stands in for a GPU renderer: it walks the visible part of the
// scene and reports counts at debug level every LogEvery frames.
type FrameStatsRenderer struct {
	LogEvery uint64
	Logger   Logger

	last FrameStats
}

func NewFrameStatsRenderer(logger Logger) *FrameStatsRenderer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &FrameStatsRenderer{LogEvery: 300, Logger: logger}
}

func (r *FrameStatsRenderer) Render(scene *core.Scene, camera *core.Camera) {
	visible := 0
	scene.Root.Traverse(func(n *core.Node) bool {
		if !n.Visible {
			return false
		}
		if n.Mesh != nil {
			visible++
		}
		return true
	})
	geometries, materials := scene.Pool.Live()

	r.last = FrameStats{
		Frames:         r.last.Frames + 1,
		VisibleMeshes:  visible,
		LiveGeometries: geometries,
		LiveMaterials:  materials,
	}
	if r.LogEvery > 0 && r.last.Frames%r.LogEvery == 0 && r.Logger.DebugEnabled() {
		r.Logger.Debugf("frame %d: %d visible meshes, %d geometries, %d materials, camera at %v",
			r.last.Frames, visible, geometries, materials, camera.Position)
	}
}

func (r *FrameStatsRenderer) Stats() FrameStats { return r.last }
