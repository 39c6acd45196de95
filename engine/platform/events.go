package platform

import (
	"fmt"

	"github.com/spaghettifunk/glengine/engine/core"
)

type EventType uint8

const (
	// Nothing left to process for this frame.
	EventNone EventType = iota
	// The window was asked to close. The loop stops for good.
	EventDelete
	// A key was pressed. Key, X and Y are set.
	EventKeyPress
	// Anything else the platform reports (resize, focus, mouse buttons).
	EventOther
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventDelete:
		return "delete"
	case EventKeyPress:
		return "key-press"
	case EventOther:
		return "other"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

type WindowEvent struct {
	Type EventType
	// Key and cursor position, only meaningful for EventKeyPress.
	Key  core.KeyCode
	X, Y int
}

func NoEvent() WindowEvent {
	return WindowEvent{Type: EventNone}
}

func DeleteEvent() WindowEvent {
	return WindowEvent{Type: EventDelete}
}

func KeyPressEvent(key core.KeyCode, x, y int) WindowEvent {
	return WindowEvent{Type: EventKeyPress, Key: key, X: x, Y: y}
}

func OtherEvent() WindowEvent {
	return WindowEvent{Type: EventOther}
}
