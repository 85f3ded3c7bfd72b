package key

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// keyNames are the helix names of special keys.
var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "ret",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "del",
	KeyInsert:    "ins",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// runeNames are named keys that produce characters.
var runeNames = map[string]rune{
	"space": ' ',
	"minus": '-',
	"lt":    '<',
	"gt":    '>',
}

// String returns the helix name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}

// KeyFromName returns the special key with the given helix name.
func KeyFromName(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	switch name {
	case "enter", "return":
		return KeyEnter
	case "escape":
		return KeyEscape
	case "delete":
		return KeyDelete
	case "insert":
		return KeyInsert
	}
	return KeyNone
}
