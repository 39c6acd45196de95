// Package desktop binds the engine to a glfw window with an OpenGL ES context.
package desktop

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/glengine/engine/containers"
	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform"
)

const defaultQueueSize = 256

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window

	events         *containers.RingQueue[platform.WindowEvent]
	initialized    atomic.Bool
	closeRequested atomic.Bool
}

func New() *Platform {
	return &Platform{
		events: containers.NewRingQueue[platform.WindowEvent](defaultQueueSize),
	}
}

func (p *Platform) CreateSurfaceAndBindContext(title string, x, y, width, height int, flags platform.WindowFlags) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return fmt.Errorf("%w: %v", core.ErrPlatformInit, err)
	}
	p.initialized.Store(true)

	applyWindowHints(flags)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		p.initialized.Store(false)
		return fmt.Errorf("%w: %v", core.ErrWindowCreate, err)
	}
	p.Window = window

	p.Window.SetCharCallback(p.charCallback)
	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetFocusCallback(p.focusCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetPos(x, y)
	p.Window.MakeContextCurrent()
	glfw.SwapInterval(1)
	p.Window.Show()

	core.LogDebug("window %q created at (%d, %d) size %dx%d flags %s", title, x, y, width, height, flags)
	return nil
}

func (p *Platform) GetEvent() platform.WindowEvent {
	if p.Window == nil {
		return platform.DeleteEvent()
	}
	if ev, err := p.events.Dequeue(); err == nil {
		return ev
	}
	glfw.PollEvents()
	if ev, err := p.events.Dequeue(); err == nil {
		return ev
	}
	if p.closeRequested.Load() || p.Window.ShouldClose() {
		return platform.DeleteEvent()
	}
	return platform.NoEvent()
}

func (p *Platform) SwapBuffers() {
	if p.Window != nil {
		p.Window.SwapBuffers()
	}
}

// RequestClose makes the next GetEvent report a delete event. Safe to call
// from any goroutine.
func (p *Platform) RequestClose() {
	p.closeRequested.Store(true)
	if p.initialized.Load() {
		// wake up the main thread if it is waiting on the window system
		glfw.PostEmptyEvent()
	}
}

func (p *Platform) Terminate() {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	if p.initialized.Swap(false) {
		glfw.Terminate()
	}
}

func applyWindowHints(flags platform.WindowFlags) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	for _, h := range framebufferHints(flags) {
		glfw.WindowHint(h.hint, h.value)
	}
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

func framebufferHints(flags platform.WindowFlags) []windowHint {
	hints := []windowHint{
		{glfw.RedBits, 8},
		{glfw.GreenBits, 8},
		{glfw.BlueBits, 8},
		{glfw.AlphaBits, 0},
		{glfw.DepthBits, 0},
		{glfw.StencilBits, 0},
		{glfw.Samples, 0},
	}
	if flags.Has(platform.WindowAlpha) {
		hints[3].value = 8
	}
	if flags.Has(platform.WindowDepth) {
		hints[4].value = 24
	}
	if flags.Has(platform.WindowStencil) {
		hints[5].value = 8
	}
	if flags.Has(platform.WindowMultisample) {
		hints[6].value = 4
	}
	return hints
}

func (p *Platform) push(ev platform.WindowEvent) {
	if err := p.events.Enqueue(ev); err != nil {
		core.LogWarn("dropping %s event: %s", ev.Type, err)
	}
}

func (p *Platform) cursor(w *glfw.Window) (int, int) {
	x, y := w.GetCursorPos()
	return int(x), int(y)
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	x, y := p.cursor(w)
	if ev, ok := charEvent(char, x, y); ok {
		p.push(ev)
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	x, y := p.cursor(w)
	if ev, ok := keyEvent(key, action, x, y); ok {
		p.push(ev)
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	p.push(platform.OtherEvent())
}

func (p *Platform) focusCallback(w *glfw.Window, focused bool) {
	p.push(platform.OtherEvent())
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.LogDebug("framebuffer resized: %d, %d", width, height)
	p.push(platform.OtherEvent())
}
