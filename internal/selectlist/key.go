package selectlist

import "strings"

// KeyCode identifies the key that was pressed
type KeyCode int

const (
	// KeyUnknown is any sequence the decoder does not recognise
	KeyUnknown KeyCode = iota
	// KeyRune is a printable character, stored in Key.Rune
	KeyRune
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
)

// Modifier is a bit set of modifier keys held with a key
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Key is a single decoded keyboard event.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

var keyNames = map[KeyCode]string{
	KeySpace:     " ",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
}

// String returns the key name using the same spelling as bubbletea
// ("up", "ctrl+c", " ", "shift+down"), so keys can be matched against
// bubbles/key bindings.
func (k Key) String() string {
	var base string
	switch k.Code {
	case KeyRune:
		base = string(k.Rune)
	case KeyUnknown:
		return "unknown"
	default:
		base = keyNames[k.Code]
	}

	var b strings.Builder
	if k.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Mod&ModShift != 0 {
		b.WriteString("shift+")
	}
	b.WriteString(base)
	return b.String()
}
