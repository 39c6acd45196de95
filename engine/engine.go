package engine

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform"
)

type Stage uint8

const (
	// No surface has been created yet
	StageUninitialized Stage = iota
	// Surface created, clock started
	StageCreated
	// Loop is pumping events and frames
	StageRunning
	// A delete event was received, shutdown callback pending
	StageTerminating
	// Loop returned. The engine cannot run again.
	StageStopped
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "uninitialized"
	case StageCreated:
		return "created"
	case StageRunning:
		return "running"
	case StageTerminating:
		return "terminating"
	case StageStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Engine drives a platform window: it pumps events, measures frame time and
// dispatches the registered callbacks. T is the application context handed
// back to every callback.
type Engine[T any] struct {
	id           uuid.UUID
	currentStage Stage
	platform     platform.Platform
	clock        *core.Clock
	metrics      *core.Metrics

	drawFunc     DrawFunc[T]
	updateFunc   UpdateFunc[T]
	shutdownFunc ShutdownFunc[T]
	keyFunc      KeyFunc[T]
}

type Option func(*options)

type options struct {
	clock *core.Clock
}

// WithClock replaces the wall clock used to compute frame delta time.
func WithClock(c *core.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func New[T any](p platform.Platform, opts ...Option) *Engine[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.clock == nil {
		o.clock = core.NewClock()
	}
	return &Engine[T]{
		id:           uuid.New(),
		currentStage: StageUninitialized,
		platform:     p,
		clock:        o.clock,
		metrics:      core.NewMetrics(),
	}
}

// Create opens the window and binds its rendering context, then starts the
// frame clock. Platform errors are returned unchanged.
func (e *Engine[T]) Create(title string, x, y, width, height int, flags platform.WindowFlags) error {
	if err := e.platform.CreateSurfaceAndBindContext(title, x, y, width, height, flags); err != nil {
		return err
	}
	e.clock.Start()
	e.currentStage = StageCreated
	core.LogInfo("engine %s: surface %q created (%dx%d)", e.id, title, width, height)
	return nil
}

// Loop runs until the platform reports a delete event, then calls the
// shutdown callback once and returns. Pending events are drained at the start
// of every frame; key presses are dispatched while draining.
func (e *Engine[T]) Loop(ctx T) {
	switch e.currentStage {
	case StageStopped:
		core.LogWarn("engine %s: loop called on a stopped engine", e.id)
		return
	case StageUninitialized:
		core.LogWarn("engine %s: loop called before create", e.id)
		if !e.clock.Started() {
			e.clock.Start()
		}
	}
	e.currentStage = StageRunning
	core.LogDebug("engine %s: entering frame loop", e.id)

	for !e.pumpEvents(ctx) {
		deltaTime := e.clock.Tick()

		e.callUpdateFunc(ctx, deltaTime)
		e.callDrawFunc(ctx)

		e.platform.SwapBuffers()

		if e.metrics.Update(deltaTime) {
			fps, frameTime := e.metrics.Frame()
			core.LogDebug("engine %s: %.0f fps, %.3f ms/frame", e.id, fps, frameTime)
		}
	}

	e.currentStage = StageTerminating
	core.LogInfo("engine %s: delete event received, shutting down", e.id)
	e.callShutdownFunc(ctx)
	e.currentStage = StageStopped
}

// pumpEvents drains the platform queue until it is empty and reports whether
// a delete event was seen. Nothing after a delete event is consumed.
func (e *Engine[T]) pumpEvents(ctx T) bool {
	for {
		event := e.platform.GetEvent()
		switch event.Type {
		case platform.EventNone:
			return false
		case platform.EventDelete:
			return true
		case platform.EventKeyPress:
			e.callKeyFunc(ctx, event.Key, event.X, event.Y)
		}
	}
}

func (e *Engine[T]) Stage() Stage {
	return e.currentStage
}

// ID identifies this engine instance in log lines.
func (e *Engine[T]) ID() uuid.UUID {
	return e.id
}

func (e *Engine[T]) Metrics() *core.Metrics {
	return e.metrics
}
