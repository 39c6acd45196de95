package core

// KeyCode is the character produced by a key press. Printable keys carry
// their character; the named keys below use their ASCII control codes.
type KeyCode uint8

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_DELETE    KeyCode = 0x7F
)

// IsPrintable reports whether the key is a visible ASCII character or space.
func (k KeyCode) IsPrintable() bool {
	return k >= KEY_SPACE && k < KEY_DELETE
}

func (k KeyCode) String() string {
	switch k {
	case KEY_BACKSPACE:
		return "backspace"
	case KEY_TAB:
		return "tab"
	case KEY_ENTER:
		return "enter"
	case KEY_ESCAPE:
		return "escape"
	case KEY_SPACE:
		return "space"
	case KEY_DELETE:
		return "delete"
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return "unknown"
}
