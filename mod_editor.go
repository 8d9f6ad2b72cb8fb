package skyisles

import (
	"fmt"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	ModeView Mode = iota
	ModePlacingIsland
	ModePlacingTree
	ModePlacingRock
	ModeRemovingObject
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "View"
	case ModePlacingIsland:
		return "Place Island"
	case ModePlacingTree:
		return "Place Tree"
	case ModePlacingRock:
		return "Place Rock"
	case ModeRemovingObject:
		return "Remove Object"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// placing returns the entity kind placed in m.
func (m Mode) placing() (Kind, bool) {
	switch m {
	case ModePlacingIsland:
		return KindIsland, true
	case ModePlacingTree:
		return KindTree, true
	case ModePlacingRock:
		return KindRock, true
	}
	return 0, false
}

func (m Mode) cursor() Cursor {
	switch m {
	case ModePlacingIsland, ModePlacingTree, ModePlacingRock:
		return CursorCrosshair
	case ModeRemovingObject:
		return CursorPointer
	}
	return CursorDefault
}

// Command is a mode-select request from the toolbar or keyboard.
type Command int

const (
	SelectView Command = iota
	SelectPlaceIsland
	SelectPlaceTree
	SelectPlaceRock
	SelectRemove
)

func (c Command) mode() Mode {
	switch c {
	case SelectView:
		return ModeView
	case SelectPlaceIsland:
		return ModePlacingIsland
	case SelectPlaceTree:
		return ModePlacingTree
	case SelectPlaceRock:
		return ModePlacingRock
	case SelectRemove:
		return ModeRemovingObject
	}
	panic(fmt.Sprintf("unknown command %d", int(c)))
}

// EditorContext bundles what the editor needs. Navigator, Viewport and Logger may be
// nil.
type EditorContext struct {
	Scene     *core.Scene
	Registry  *Registry
	Lifecycle *Lifecycle
	Factory   Factory
	Camera    *core.Camera
	Navigator Navigator
	Viewport  Viewport
	Logger    Logger
	Config    Config
}

type highlight struct {
	entity  *Entity
	saved   map[*core.Node]*core.Material
	applied []*core.Material
}

// Editor is the interactive session: current mode, the ghost preview and the entity
// marked for removal.
type Editor struct {
	scene     *core.Scene
	registry  *Registry
	lifecycle *Lifecycle
	factory   Factory
	resolver  *Resolver
	navigator Navigator
	viewport  Viewport
	logger    Logger

	settings       EditorConfig
	highlightColor uint32

	mode      Mode
	preview   *Preview
	highlight highlight
}

// NewEditor starts a session in View mode.
func NewEditor(ctx EditorContext) *Editor {
	e := &Editor{
		scene:          ctx.Scene,
		registry:       ctx.Registry,
		lifecycle:      ctx.Lifecycle,
		factory:        ctx.Factory,
		resolver:       NewResolver(ctx.Camera),
		navigator:      ctx.Navigator,
		viewport:       ctx.Viewport,
		logger:         ctx.Logger,
		settings:       ctx.Config.Editor,
		highlightColor: ctx.Config.Palette.Highlight,
	}
	if e.navigator == nil {
		e.navigator = nopNavigator{}
	}
	if e.viewport == nil {
		e.viewport = nopViewport{}
	}
	if e.logger == nil {
		e.logger = NewNopLogger()
	}
	e.SetMode(ModeView)
	return e
}

func (e *Editor) Mode() Mode { return e.mode }

// Preview is the active ghost, nil outside the placing modes.
func (e *Editor) Preview() *Preview { return e.preview }

// Highlighted is the entity marked for removal, if any.
func (e *Editor) Highlighted() *Entity { return e.highlight.entity }

// ApplyConfig takes new editor tunables. The active preview keeps its materials until
// the next mode change.
func (e *Editor) ApplyConfig(cfg Config) {
	e.settings = cfg.Editor
	e.highlightColor = cfg.Palette.Highlight
}

func (e *Editor) Execute(cmd Command) {
	e.SetMode(cmd.mode())
}

// SetMode switches modes. Every call rebuilds the session state, including a switch
// to the current mode.
func (e *Editor) SetMode(mode Mode) {
	e.clearHighlight()
	if e.preview != nil {
		e.preview.destroy()
		e.preview = nil
	}

	e.mode = mode
	e.navigator.SetNavigationEnabled(mode == ModeView)

	if kind, ok := mode.placing(); ok {
		e.preview = e.factory.ConstructPreview(kind)
		e.scene.Add(e.preview.Node)
	}

	e.viewport.SetCursor(mode.cursor())
	e.viewport.SetModeLabel(mode.String())
	e.logger.Infof("editor mode: %v", mode)
}

func (e *Editor) OnPointerMove(ndc mgl32.Vec2) {
	switch e.mode {
	case ModeView:
	case ModeRemovingObject:
		e.updateHighlight(ndc)
	case ModePlacingIsland:
		e.updateIslandPreview(ndc)
	case ModePlacingTree, ModePlacingRock:
		e.updateSurfacePreview(ndc)
	}
}

func (e *Editor) OnPointerDown(button PointerButton, ndc mgl32.Vec2) {
	if button != ButtonPrimary {
		return
	}
	switch e.mode {
	case ModeView:
	case ModeRemovingObject:
		target := e.highlight.entity
		if target == nil {
			return
		}
		// Restore first so the entity's own materials are the ones disposed.
		e.clearHighlight()
		e.logger.Infof("removing %v", target)
		e.lifecycle.Remove(target)
	case ModePlacingIsland, ModePlacingTree, ModePlacingRock:
		e.place()
	}
}

func (e *Editor) updateHighlight(ndc mgl32.Vec2) {
	var owner *Entity
	if hit, ok := e.resolver.Resolve(ndc, e.registry.AllFragments()); ok {
		owner = e.registry.Owner(hit.Fragment)
	}
	if owner == e.highlight.entity {
		return
	}
	e.clearHighlight()
	if owner != nil {
		e.applyHighlight(owner)
	}
}

func (e *Editor) applyHighlight(target *Entity) {
	h := highlight{
		entity: target,
		saved:  make(map[*core.Node]*core.Material),
	}
	for _, fragment := range target.Node.Meshes() {
		original := fragment.Mesh.Material
		if original == nil {
			continue
		}
		marked := original.Clone()
		marked.Desc.Emissive = core.RGBA(e.highlightColor, 255)
		marked.Desc.EmissiveIntensity = 1
		marked.Overlay = true
		h.saved[fragment] = original
		h.applied = append(h.applied, marked)
		fragment.Mesh.Material = marked
	}
	e.highlight = h
	e.logger.Debugf("highlight %v (%d fragments)", target, len(h.saved))
}

func (e *Editor) clearHighlight() {
	if e.highlight.entity == nil {
		return
	}
	for fragment, original := range e.highlight.saved {
		fragment.Mesh.Material = original
	}
	for _, m := range e.highlight.applied {
		m.Dispose()
	}
	e.highlight = highlight{}
}

func (e *Editor) updateIslandPreview(ndc mgl32.Vec2) {
	hit, ok := e.resolver.Resolve(ndc, []*core.Node{e.scene.Ground})
	if !ok {
		e.preview.hide()
		return
	}
	e.preview.showAt(mgl32.Vec3{hit.Point.X(), e.settings.IslandBaseLevel, hit.Point.Z()})
	e.preview.setLegal(e.previewLegal())
}

func (e *Editor) updateSurfacePreview(ndc mgl32.Vec2) {
	hit, ok := e.resolver.Resolve(ndc, e.registry.IslandSurfaces())
	if !ok {
		e.preview.hide()
		return
	}

	clearance := e.settings.RockClearance
	if e.preview.Kind == KindTree {
		clearance = e.settings.TreeClearance
	}
	position := hit.Point.Add(mgl32.Vec3{0, clearance, 0})
	e.preview.showAt(position)

	e.preview.target = e.registry.Owner(hit.Fragment)
	e.preview.setLegal(e.previewLegal())
}

// previewLegal checks the preview's current position against the registry as it
// is now.
func (e *Editor) previewLegal() bool {
	p := e.preview
	switch p.Kind {
	case KindIsland:
		bounds := p.WorldBounds()
		return !IslandOverlaps(bounds, e.registry.IslandsNear(bounds))
	case KindTree:
		if p.target != nil {
			return !TreeTooClose(p.target.Node.WorldToLocal(p.Position()), p.target, e.settings.TreeMinSpacing)
		}
	}
	return true
}

func (e *Editor) place() {
	p := e.preview
	if p == nil || !p.Visible() || !p.Legal() {
		return
	}
	// The registry may have changed since the last pointer move.
	if !e.previewLegal() {
		p.setLegal(false)
		return
	}

	position := p.Position()
	var parent *Entity
	if p.Kind != KindIsland && p.target != nil && !p.target.Removed() {
		parent = p.target
		position = parent.Node.WorldToLocal(position)
	}

	created := e.lifecycle.Create(p.Kind, PoseAt(position), parent)
	e.logger.Infof("placed %v at %v", created, created.WorldPosition())
	p.setLegal(e.previewLegal())
}
