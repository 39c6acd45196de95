package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform"
)

// Keys without a character that still produce a key press.
var controlKeys = map[glfw.Key]core.KeyCode{
	glfw.KeyEscape:    core.KEY_ESCAPE,
	glfw.KeyEnter:     core.KEY_ENTER,
	glfw.KeyKPEnter:   core.KEY_ENTER,
	glfw.KeyBackspace: core.KEY_BACKSPACE,
	glfw.KeyTab:       core.KEY_TAB,
	glfw.KeyDelete:    core.KEY_DELETE,
}

// charEvent translates a typed character. Only printable ASCII is reported.
func charEvent(char rune, x, y int) (platform.WindowEvent, bool) {
	if char < rune(core.KEY_SPACE) || char >= rune(core.KEY_DELETE) {
		return platform.WindowEvent{}, false
	}
	return platform.KeyPressEvent(core.KeyCode(char), x, y), true
}

// keyEvent translates presses and repeats of the control keys; printable
// keys arrive through charEvent instead.
func keyEvent(key glfw.Key, action glfw.Action, x, y int) (platform.WindowEvent, bool) {
	if action == glfw.Release {
		return platform.WindowEvent{}, false
	}
	code, ok := controlKeys[key]
	if !ok {
		return platform.WindowEvent{}, false
	}
	return platform.KeyPressEvent(code, x, y), true
}
