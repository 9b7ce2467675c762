package glbackend

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/phanxgames/glint"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// WindowConfig describes the window NewWindow opens.
type WindowConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	Undecorated   bool
	HideCursor    bool
	// SwapInterval is passed to glfwSwapInterval. Zero leaves frame pacing to
	// the renderer.
	SwapInterval int
}

// Window is a GLFW window owning an OpenGL 3.3 core context.
type Window struct {
	win        *glfw.Window
	fullscreen bool
	// windowed geometry restored when leaving fullscreen
	x, y, w, h int
	closed     bool
}

var (
	_ glint.Window = (*Window)(nil)
)

// NewWindow initialises GLFW, opens a window, makes its context current and
// loads the OpenGL functions. The returned Device draws into that context.
func NewWindow(cfg WindowConfig) (*Window, *Device, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, nil, fmt.Errorf("glbackend: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glbackend: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(!cfg.Undecorated))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glbackend: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glbackend: gl init: %w", err)
	}
	glfw.SwapInterval(cfg.SwapInterval)
	if cfg.HideCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return &Window{win: win}, &Device{}, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// GLFW exposes the underlying window for input callbacks.
func (w *Window) GLFW() *glfw.Window { return w.win }

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// SetSize resizes the window's content area in screen coordinates.
func (w *Window) SetSize(width, height int) {
	w.win.SetSize(width, height)
}

// ToggleFullscreen switches between windowed mode and fullscreen on the
// primary monitor.
func (w *Window) ToggleFullscreen() {
	if w.fullscreen {
		w.win.SetMonitor(nil, w.x, w.y, w.w, w.h, 0)
		w.fullscreen = false
		return
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	w.x, w.y = w.win.GetPos()
	w.w, w.h = w.win.GetSize()
	mode := monitor.GetVideoMode()
	w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.fullscreen = true
}

// ToggleBorder shows or hides the window decorations.
func (w *Window) ToggleBorder() {
	decorated := w.win.GetAttrib(glfw.Decorated) == glfw.True
	w.win.SetAttrib(glfw.Decorated, boolHint(!decorated))
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
	return nil
}
