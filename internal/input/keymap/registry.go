package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/treenav/internal/input/key"
)

// Registry holds the active bindings of every mode.
type Registry struct {
	mu sync.RWMutex

	// modes maps mode -> canonical key spec -> binding.
	modes map[string]map[string]Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modes: make(map[string]map[string]Binding)}
}

// Register adds all bindings of a keymap, replacing bindings for the same
// keys.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if err := km.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range km.Bindings {
		ev := key.MustParse(b.Keys)
		r.bindLocked(km.Mode, ev, b)
	}
	return nil
}

// Bind binds a single key in a mode.
func (r *Registry) Bind(mode, keys, command string) error {
	km := &Keymap{Name: "bind", Mode: mode, Bindings: []Binding{{Keys: keys, Command: command}}}
	return r.Register(km)
}

// Unbind removes the binding for keys in mode.
func (r *Registry) Unbind(mode, keys string) error {
	ev, err := key.Parse(keys)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modes[mode], ev.String())
	return nil
}

func (r *Registry) bindLocked(mode string, ev key.Event, b Binding) {
	m, ok := r.modes[mode]
	if !ok {
		m = make(map[string]Binding)
		r.modes[mode] = m
	}
	b.Keys = ev.String()
	m[b.Keys] = b
}

// Lookup finds the binding for a key event in mode.
func (r *Registry) Lookup(mode string, ev key.Event) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.modes[mode][ev.String()]
	return b, ok
}

// LookupSpec is Lookup for a key specification.
func (r *Registry) LookupSpec(mode, keys string) (Binding, bool) {
	ev, err := key.Parse(keys)
	if err != nil {
		return Binding{}, false
	}
	return r.Lookup(mode, ev)
}

// Bindings returns the bindings of a mode sorted by key.
func (r *Registry) Bindings(mode string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.modes[mode]))
	for _, b := range r.modes[mode] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// KeysFor returns the keys bound to command in mode, sorted.
func (r *Registry) KeysFor(mode, command string) []string {
	var keys []string
	for _, b := range r.Bindings(mode) {
		if b.Command == command {
			keys = append(keys, b.Keys)
		}
	}
	return keys
}

// Commands returns every bound command name, sorted and deduplicated.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, m := range r.modes {
		for _, b := range m {
			if !seen[b.Command] {
				seen[b.Command] = true
				out = append(out, b.Command)
			}
		}
	}
	sort.Strings(out)
	return out
}
