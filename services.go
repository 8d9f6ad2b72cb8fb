package skyisles

import (
	"github.com/gekko3d/skyisles/core"
)

// Renderer draws the current scene. It is called once per frame after the editor and
// animation updates.
type Renderer interface {
	Render(scene *core.Scene, camera *core.Camera)
}

// Construction is a freshly built entity subtree plus the ambient animations it
// needs. Every call allocates independent geometry and material resources.
type Construction struct {
	Node       *core.Node
	Animations []AnimationRequest
	Tree       *TreeData
	Rock       *RockData
}

type AnimationRequest struct {
	Target   *core.Node
	Behavior Behavior
	Params   AnimationParams
}

// Factory builds the meshes for each kind of placeable object and its preview.
type Factory interface {
	Construct(kind Kind, pose Pose) Construction
	ConstructPreview(kind Kind) *Preview
}

// Animator owns the set of animated nodes.
type Animator interface {
	Register(target *core.Node, behavior Behavior, params AnimationParams)
	// Deregister drops target and every node below it.
	Deregister(target *core.Node)
}

// Navigator toggles free camera navigation.
type Navigator interface {
	SetNavigationEnabled(enabled bool)
}

type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorPointer
)

func (c Cursor) String() string {
	switch c {
	case CursorCrosshair:
		return "crosshair"
	case CursorPointer:
		return "pointer"
	}
	return "default"
}

// Viewport is the window surface the editor draws affordances on.
type Viewport interface {
	SetCursor(cursor Cursor)
	SetModeLabel(label string)
}

type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

type nopViewport struct{}

func (nopViewport) SetCursor(Cursor)     {}
func (nopViewport) SetModeLabel(string) {}

type nopNavigator struct{}

func (nopNavigator) SetNavigationEnabled(bool) {}
