package engine

import "github.com/spaghettifunk/glengine/engine/platform"

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX int
	// Window starting position y axis, if applicable.
	StartPosY int
	// Window starting width.
	StartWidth int
	// Window starting height.
	StartHeight int
	// The application name used as window title.
	Name  string
	Flags platform.WindowFlags
}

// CreateFromConfig is Create with the window settings taken from cfg.
func (e *Engine[T]) CreateFromConfig(cfg *ApplicationConfig) error {
	return e.Create(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight, cfg.Flags)
}
