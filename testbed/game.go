package testbed

import (
	"math"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/spaghettifunk/glengine/engine"
	"github.com/spaghettifunk/glengine/engine/core"
)

// Closer ends the frame loop on the next poll.
type Closer interface {
	RequestClose()
}

// Renderer is the small slice of OpenGL ES the example needs.
type Renderer interface {
	Init() error
	Viewport(width, height int)
	Clear(r, g, b, a float32)
}

type gameState struct {
	Frames  uint64
	Elapsed float64
	Keys    []core.KeyCode
	Colour  [4]float32

	width  int
	height int
}

type TestGame struct {
	closer   Closer
	renderer Renderer
	State    *gameState
}

func NewTestGame(closer Closer, renderer Renderer) *TestGame {
	if renderer == nil {
		renderer = &GLESRenderer{}
	}
	return &TestGame{
		closer:   closer,
		renderer: renderer,
		State: &gameState{
			Colour: [4]float32{0, 0, 0, 1},
		},
	}
}

// Initialize must run after the surface exists: it needs a current context.
func (g *TestGame) Initialize(app *engine.ApplicationConfig) error {
	core.LogDebug("TestGame Initialize fn....")
	if err := g.renderer.Init(); err != nil {
		core.LogError("failed to load OpenGL ES functions: %s", err)
		return err
	}
	g.State.width = app.StartWidth
	g.State.height = app.StartHeight
	g.renderer.Viewport(g.State.width, g.State.height)
	return nil
}

// Register hooks the game callbacks into e.
func (g *TestGame) Register(e *engine.Engine[*TestGame]) {
	e.RegisterUpdateFunc(Update)
	e.RegisterDrawFunc(Draw)
	e.RegisterKeyFunc(Key)
	e.RegisterShutdownFunc(Shutdown)
}

func Update(g *TestGame, deltaTime float64) {
	g.State.Elapsed += deltaTime
	t := g.State.Elapsed
	// slow cycle through the hues
	g.State.Colour[0] = float32(0.5 + 0.5*math.Sin(t))
	g.State.Colour[1] = float32(0.5 + 0.5*math.Sin(t+2*math.Pi/3))
	g.State.Colour[2] = float32(0.5 + 0.5*math.Sin(t+4*math.Pi/3))
}

func Draw(g *TestGame) {
	c := g.State.Colour
	g.renderer.Clear(c[0], c[1], c[2], c[3])
	g.State.Frames++
}

func Key(g *TestGame, key core.KeyCode, x, y int) {
	g.State.Keys = append(g.State.Keys, key)
	if key == core.KEY_ESCAPE {
		core.LogInfo("escape pressed at (%d, %d), closing", x, y)
		g.closer.RequestClose()
		return
	}
	core.LogInfo("'%s' key pressed at (%d, %d)", key, x, y)
}

func Shutdown(g *TestGame) {
	core.LogInfo("shutting down after %d frames (%.2fs)", g.State.Frames, g.State.Elapsed)
}

type GLESRenderer struct{}

func (r *GLESRenderer) Init() error {
	return gl.Init()
}

func (r *GLESRenderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *GLESRenderer) Clear(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
