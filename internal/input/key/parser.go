package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a helix key specification into an Event.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// "-" alone and "A--" end in a literal minus.
	var mods Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		mod := modifierFromName(rest[:1])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, rest[:1])
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}

	if k := KeyFromName(rest); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNames[rest]; ok {
		return NewRuneEvent(r, mods), nil
	}
	if r, size := utf8.DecodeRuneInString(rest); r != utf8.RuneError && size == len(rest) {
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, rest)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
