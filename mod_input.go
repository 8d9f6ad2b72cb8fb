package skyisles

import (
	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	KeyA int = iota
	KeyD
	KeyQ
	KeyS
	KeyW
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyEscape
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
	KeyControl
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Input is the polled keyboard and mouse state for the current frame. The window
// layer feeds it through SetKey and SetCursor after BeginFrame.
type Input struct {
	Pressed [256]bool

	JustPressed  [256]bool
	JustReleased [256]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	mouseMoved               bool
	mouseSeen                bool

	WindowWidth, WindowHeight int

	// CloseRequested is set by the window layer when the user closes the window.
	CloseRequested bool
}

// BeginFrame clears the per-frame edges.
func (input *Input) BeginFrame() {
	input.JustPressed = [256]bool{}
	input.JustReleased = [256]bool{}
	input.MouseDeltaX = 0
	input.MouseDeltaY = 0
	input.mouseMoved = false
}

func (input *Input) SetKey(key int, pressed bool) {
	if pressed {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
	} else if input.Pressed[key] {
		input.JustReleased[key] = true
	}
	input.Pressed[key] = pressed
}

// SetCursor records the pointer position in window pixels.
func (input *Input) SetCursor(x, y float64) {
	if input.mouseSeen && x == input.MouseX && y == input.MouseY {
		return
	}
	if input.mouseSeen {
		input.MouseDeltaX += x - input.MouseX
		input.MouseDeltaY += y - input.MouseY
	}
	input.MouseX, input.MouseY = x, y
	input.mouseMoved = true
	input.mouseSeen = true
}

func (input *Input) MouseMoved() bool { return input.mouseMoved }

// PointerNDC maps the cursor into normalized device coordinates, y up.
func (input *Input) PointerNDC() mgl32.Vec2 {
	if input.WindowWidth <= 0 || input.WindowHeight <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32(2*input.MouseX/float64(input.WindowWidth) - 1),
		float32(1 - 2*input.MouseY/float64(input.WindowHeight)),
	}
}

var commandKeys = map[int]Command{
	Key1:      SelectView,
	Key2:      SelectPlaceIsland,
	Key3:      SelectPlaceTree,
	Key4:      SelectPlaceRock,
	Key5:      SelectRemove,
	KeyEscape: SelectView,
}

// InputModule routes polled input into the editor: number keys select modes, the
// pointer drives previews and highlights, the left button confirms. Ctrl+Q or a
// close request quits the app.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(quitSystem).
			InStage(PreUpdate),
	).UseSystem(
		System(viewportAspectSystem).
			InStage(PreUpdate),
	).UseSystem(
		System(editorInputSystem).
			InStage(PreUpdate),
	)
}

func quitSystem(input *Input, cmd *Commands) {
	if input.CloseRequested || (input.Pressed[KeyControl] && input.JustPressed[KeyQ]) {
		cmd.Quit()
	}
}

// viewportAspectSystem keeps the camera aspect in step with the window so pointer
// rays match what is on screen.
func viewportAspectSystem(input *Input, camera *core.Camera) {
	if input.WindowWidth <= 0 || input.WindowHeight <= 0 {
		return
	}
	camera.Aspect = float32(input.WindowWidth) / float32(input.WindowHeight)
}

func editorInputSystem(input *Input, editor *Editor) {
	for _, key := range []int{Key1, Key2, Key3, Key4, Key5, KeyEscape} {
		if input.JustPressed[key] {
			editor.Execute(commandKeys[key])
		}
	}

	ndc := input.PointerNDC()
	if input.MouseMoved() {
		editor.OnPointerMove(ndc)
	}
	if input.JustPressed[MouseButtonLeft] {
		editor.OnPointerDown(ButtonPrimary, ndc)
	}
	if input.JustPressed[MouseButtonRight] {
		editor.OnPointerDown(ButtonSecondary, ndc)
	}
}
