package platform

// Platform is the windowing layer the engine drives. Implementations own the
// native window, the rendering context and the event source.
type Platform interface {
	// CreateSurfaceAndBindContext opens a window at (x, y) with the given size
	// and makes its rendering context current on the calling thread.
	CreateSurfaceAndBindContext(title string, x, y, width, height int, flags WindowFlags) error
	// GetEvent returns the next pending event, or an EventNone event when
	// nothing is pending. It never blocks waiting for input.
	GetEvent() WindowEvent
	// SwapBuffers presents the back buffer.
	SwapBuffers()
}
