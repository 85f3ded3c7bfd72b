package keymap

import (
	"fmt"

	"github.com/dshills/treenav/internal/input/key"
)

// Editor modes.
const (
	ModeNormal = "normal"
	ModeSelect = "select"
	ModeInsert = "insert"
)

// Modes lists the modes bindings may target.
var Modes = []string{ModeNormal, ModeSelect, ModeInsert}

// IsMode reports whether name is a known mode.
func IsMode(name string) bool {
	for _, m := range Modes {
		if m == name {
			return true
		}
	}
	return false
}

// Binding maps a key to a command.
type Binding struct {
	// Keys is the key specification, e.g. "A-a" or "tab".
	Keys string

	// Command is the command name, e.g. "select_all_siblings".
	Command string

	// Description provides documentation for the binding.
	Description string
}

// Keymap holds the bindings of one mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode string

	// Bindings are the key-to-command mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined ("default", "user").
	Source string
}

// NewKeymap creates an empty keymap for a mode.
func NewKeymap(name, mode string) *Keymap {
	return &Keymap{Name: name, Mode: mode}
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, command string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Keys: keys, Command: command})
	return k
}

// Validate checks that the mode is known and every binding parses.
func (k *Keymap) Validate() error {
	if !IsMode(k.Mode) {
		return fmt.Errorf("keymap %q: unknown mode %q", k.Name, k.Mode)
	}
	for i, b := range k.Bindings {
		if b.Command == "" {
			return fmt.Errorf("binding %d (%s): empty command", i, b.Keys)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}
