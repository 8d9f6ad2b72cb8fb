package main

import (
	"fmt"
	"runtime"

	"github.com/gekko3d/skyisles"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the GLFW window and implements skyisles.Viewport.
type WindowState struct {
	windowGlfw  *glfw.Window
	windowTitle string
	cursors     map[skyisles.Cursor]*glfw.Cursor
}

func createWindowState(width, height int, title string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &WindowState{
		windowGlfw:  win,
		windowTitle: title,
		cursors: map[skyisles.Cursor]*glfw.Cursor{
			skyisles.CursorDefault:   glfw.CreateStandardCursor(glfw.ArrowCursor),
			skyisles.CursorCrosshair: glfw.CreateStandardCursor(glfw.CrosshairCursor),
			skyisles.CursorPointer:   glfw.CreateStandardCursor(glfw.HandCursor),
		},
	}, nil
}

func (s *WindowState) SetCursor(cursor skyisles.Cursor) {
	s.windowGlfw.SetCursor(s.cursors[cursor])
}

func (s *WindowState) SetModeLabel(label string) {
	s.windowGlfw.SetTitle(fmt.Sprintf("%s | Mode: %s", s.windowTitle, label))
}

func (s *WindowState) Destroy() {
	for _, c := range s.cursors {
		c.Destroy()
	}
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// pollInput feeds this frame's window events into input.
func (s *WindowState) pollInput(input *skyisles.Input) {
	input.BeginFrame()
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.SetKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range buttonToGlfw {
		input.SetKey(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.SetCursor(s.windowGlfw.GetCursorPos())
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
	input.CloseRequested = s.windowGlfw.ShouldClose()
}

var pollStage = skyisles.Stage{Name: "Poll"}

// windowModule polls the window into the Input resource ahead of PreUpdate.
type windowModule struct {
	window *WindowState
}

func (m windowModule) Install(app *skyisles.App, cmd *skyisles.Commands) {
	window := m.window
	app.UseStage(pollStage, skyisles.BeforeStage(skyisles.PreUpdate)).
		UseSystem(
			skyisles.System(func(input *skyisles.Input) {
				window.pollInput(input)
			}).InStage(pollStage),
		)
}

var buttonToGlfw = map[int]glfw.MouseButton{
	skyisles.MouseButtonLeft:   glfw.MouseButtonLeft,
	skyisles.MouseButtonRight:  glfw.MouseButtonRight,
	skyisles.MouseButtonMiddle: glfw.MouseButtonMiddle,
}

var keyToGlfw = map[int]glfw.Key{
	skyisles.KeyA:        glfw.KeyA,
	skyisles.KeyD:        glfw.KeyD,
	skyisles.KeyS:        glfw.KeyS,
	skyisles.KeyW:        glfw.KeyW,
	skyisles.Key1:        glfw.Key1,
	skyisles.Key2:        glfw.Key2,
	skyisles.Key3:        glfw.Key3,
	skyisles.Key4:        glfw.Key4,
	skyisles.Key5:        glfw.Key5,
	skyisles.KeyEscape:   glfw.KeyEscape,
	skyisles.KeyRight:    glfw.KeyRight,
	skyisles.KeyLeft:     glfw.KeyLeft,
	skyisles.KeyDown:     glfw.KeyDown,
	skyisles.KeyUp:       glfw.KeyUp,
	skyisles.KeyPageUp:   glfw.KeyPageUp,
	skyisles.KeyPageDown: glfw.KeyPageDown,
	skyisles.KeyMinus:    glfw.KeyMinus,
	skyisles.KeyEqual:    glfw.KeyEqual,
	skyisles.KeyKPPlus:   glfw.KeyKPAdd,
	skyisles.KeyKPMinus:  glfw.KeyKPSubtract,
	skyisles.KeyQ:        glfw.KeyQ,
	skyisles.KeyControl:  glfw.KeyLeftControl,
}
