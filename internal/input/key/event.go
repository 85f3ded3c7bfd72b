package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
// Shift is folded into the character, so uppercase letters carry no
// Shift modifier.
func NewRuneEvent(r rune, mods Modifier) Event {
	if mods.Has(ModShift) && unicode.IsLetter(r) {
		r = unicode.ToUpper(r)
		mods &^= ModShift
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the canonical helix specification for the event.
func (e Event) String() string {
	return e.Modifiers.String() + e.keyName()
}

func (e Event) keyName() string {
	if !e.IsRune() {
		return e.Key.String()
	}
	for name, r := range runeNames {
		if r == e.Rune {
			return name
		}
	}
	return string(e.Rune)
}
