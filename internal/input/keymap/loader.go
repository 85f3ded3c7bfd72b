package keymap

import (
	"fmt"
	"sort"
)

// FromConfig builds one keymap per mode from a mode -> key -> command map,
// the shape of the [keys.bindings] configuration table.
func FromConfig(bindings map[string]map[string]string) ([]*Keymap, error) {
	modes := make([]string, 0, len(bindings))
	for mode := range bindings {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	keymaps := make([]*Keymap, 0, len(modes))
	for _, mode := range modes {
		km := NewKeymap("user-"+mode, mode)
		km.Source = "user"

		keys := make([]string, 0, len(bindings[mode]))
		for k := range bindings[mode] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			km.Add(k, bindings[mode][k])
		}

		if err := km.Validate(); err != nil {
			return nil, fmt.Errorf("keys.bindings.%s: %w", mode, err)
		}
		keymaps = append(keymaps, km)
	}
	return keymaps, nil
}

// ApplyOverrides registers user bindings on top of r.
func ApplyOverrides(r *Registry, bindings map[string]map[string]string) error {
	keymaps, err := FromConfig(bindings)
	if err != nil {
		return err
	}
	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}
