package engine

import "github.com/spaghettifunk/glengine/engine/core"

// Callbacks receive the context handle passed to Loop.
type DrawFunc[T any] func(ctx T)
type UpdateFunc[T any] func(ctx T, deltaTime float64)
type ShutdownFunc[T any] func(ctx T)
type KeyFunc[T any] func(ctx T, key core.KeyCode, x, y int)

// Register a draw callback function to be used to render each frame
func (e *Engine[T]) RegisterDrawFunc(fn DrawFunc[T]) {
	e.drawFunc = fn
}

// Register an update callback function to be used to update on each time step
func (e *Engine[T]) RegisterUpdateFunc(fn UpdateFunc[T]) {
	e.updateFunc = fn
}

// Register a callback function to be called on shutdown
func (e *Engine[T]) RegisterShutdownFunc(fn ShutdownFunc[T]) {
	e.shutdownFunc = fn
}

// Register a keyboard input processing callback function
func (e *Engine[T]) RegisterKeyFunc(fn KeyFunc[T]) {
	e.keyFunc = fn
}

func (e *Engine[T]) callDrawFunc(ctx T) {
	if e.drawFunc != nil {
		e.drawFunc(ctx)
	}
}

func (e *Engine[T]) callUpdateFunc(ctx T, deltaTime float64) {
	if e.updateFunc != nil {
		e.updateFunc(ctx, deltaTime)
	}
}

func (e *Engine[T]) callShutdownFunc(ctx T) {
	if e.shutdownFunc != nil {
		e.shutdownFunc(ctx)
	}
}

func (e *Engine[T]) callKeyFunc(ctx T, key core.KeyCode, x, y int) {
	if e.keyFunc != nil {
		e.keyFunc(ctx, key, x, y)
	}
}
