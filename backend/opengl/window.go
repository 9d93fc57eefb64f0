package opengl

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// Window owns a GLFW window, its renderer, and the frame input state.
// It satisfies datagrid.Platform: resize notifications come from the
// framebuffer-size callback, and scroll probes report the thickness the
// grid paints its own scrollbars at, since a GL surface has no native
// scrollbar chrome to measure.
//
// NewWindow and all per-frame methods must be called from the main
// thread (lock it with runtime.LockOSThread before glfw runs).
type Window struct {
	win      *glfw.Window
	renderer *Renderer
	input    *datagrid.InputState

	mu           sync.Mutex
	resizeFns    map[int]func()
	nextResizeID int

	scrollbarThickness float32
}

// NewWindow initializes GLFW, creates a window with an OpenGL 4.1 core
// context, and builds the renderer. Close releases everything,
// including GLFW itself.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fbW, fbH := win.GetFramebufferSize()
	renderer, err := NewRenderer(fbW, fbH)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	w := &Window{
		win:                win,
		renderer:           renderer,
		input:              datagrid.NewInputState(),
		resizeFns:          make(map[int]func()),
		scrollbarThickness: datagrid.DefaultStyle().ScrollbarSize,
	}

	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// Renderer exposes the underlying renderer, for hosts that drive the
// GL loop themselves.
func (w *Window) Renderer() *Renderer {
	return w.renderer
}

// FontTextureID returns the renderer's glyph atlas texture ID.
func (w *Window) FontTextureID() uint32 {
	return w.renderer.FontTextureID()
}

// SetScrollbarThickness overrides the thickness scroll probes report.
// Keep it in sync with Style.ScrollbarSize when using a custom style.
func (w *Window) SetScrollbarThickness(px float32) {
	w.scrollbarThickness = px
}

// ShouldClose reports whether the user requested the window to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Clipboard returns the system clipboard contents.
func (w *Window) Clipboard() string {
	return w.win.GetClipboardString()
}

// SetClipboard replaces the system clipboard contents. Hosts typically
// wire this to a row callback so users can copy grid data out.
func (w *Window) SetClipboard(text string) {
	w.win.SetClipboardString(text)
}

// Area returns the framebuffer size as grid layout space.
func (w *Window) Area() datagrid.Vec2 {
	fbW, fbH := w.win.GetFramebufferSize()
	return datagrid.Vec2{X: float32(fbW), Y: float32(fbH)}
}

// PollInput pumps pending GLFW events into the input state and returns
// it. Call once per frame before drawing.
func (w *Window) PollInput() *datagrid.InputState {
	w.input.Reset()
	glfw.PollEvents()

	x, y := w.win.GetCursorPos()
	w.input.SetMousePos(float32(x), float32(y))

	return w.input
}

// Render clears the framebuffer, draws the finalized DrawList, and
// swaps buffers.
func (w *Window) Render(dl *datagrid.DrawList) error {
	fbW, fbH := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0.09, 0.09, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if err := w.renderer.Render(dl); err != nil {
		return err
	}

	w.win.SwapBuffers()
	return nil
}

// Close releases the renderer, the window, and GLFW.
func (w *Window) Close() {
	w.renderer.Delete()
	w.win.Destroy()
	glfw.Terminate()
}

// NewScrollProbe returns a probe whose outer minus client width is the
// scrollbar thickness the grid draws. There is no hidden DOM-like box
// to measure on a GL surface, so the probe is synthetic but keeps the
// same measurement contract.
func (w *Window) NewScrollProbe(width, height float32) datagrid.ScrollProbe {
	client := width - w.scrollbarThickness
	if client < 0 {
		client = 0
	}
	return staticProbe{outer: width, client: client}
}

// OnResize registers fn to run whenever the framebuffer size changes.
// The returned cancel removes the registration.
func (w *Window) OnResize(fn func()) (cancel func()) {
	w.mu.Lock()
	id := w.nextResizeID
	w.nextResizeID++
	w.resizeFns[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.resizeFns, id)
		w.mu.Unlock()
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.renderer.Resize(width, height)

	w.mu.Lock()
	fns := make([]func(), 0, len(w.resizeFns))
	for _, fn := range w.resizeFns {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.input.SetMousePos(float32(xpos), float32(ypos))
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	gridButton := mapMouseButton(button)
	if gridButton < 0 {
		return
	}
	switch action {
	case glfw.Press:
		w.input.SetMouseButton(gridButton, true)
	case glfw.Release:
		w.input.SetMouseButton(gridButton, false)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func mapMouseButton(button glfw.MouseButton) datagrid.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return datagrid.MouseButtonLeft
	case glfw.MouseButtonRight:
		return datagrid.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle
	default:
		return -1
	}
}

// staticProbe is a ScrollProbe with fixed measurements.
type staticProbe struct {
	outer, client float32
}

func (p staticProbe) OuterWidth() float32  { return p.outer }
func (p staticProbe) ClientWidth() float32 { return p.client }
func (p staticProbe) Close()               {}
