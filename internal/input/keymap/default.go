package keymap

// LoadDefaults loads the default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	for _, km := range DefaultKeymaps() {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}

// DefaultKeymaps returns the default bindings, which follow helix.
func DefaultKeymaps() []*Keymap {
	return []*Keymap{
		DefaultNormalKeymap(),
		DefaultSelectKeymap(),
		DefaultInsertKeymap(),
	}
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	return &Keymap{
		Name:   "default-normal",
		Mode:   ModeNormal,
		Source: "default",
		Bindings: []Binding{
			{Keys: "A-a", Command: "select_all_siblings", Description: "Select all siblings of the current node"},
			{Keys: "A-I", Command: "select_all_children", Description: "Select all children of the current node"},
			{Keys: "A-b", Command: "move_parent_node_start", Description: "Move to the start of the parent node"},
			{Keys: "A-e", Command: "move_parent_node_end", Description: "Move to the end of the parent node"},
			{Keys: "u", Command: "undo", Description: "Undo change"},
			{Keys: "U", Command: "redo", Description: "Redo change"},
		},
	}
}

// DefaultSelectKeymap returns default select mode bindings.
func DefaultSelectKeymap() *Keymap {
	return &Keymap{
		Name:   "default-select",
		Mode:   ModeSelect,
		Source: "default",
		Bindings: []Binding{
			{Keys: "A-a", Command: "select_all_siblings", Description: "Select all siblings of the current node"},
			{Keys: "A-I", Command: "select_all_children", Description: "Select all children of the current node"},
			{Keys: "A-b", Command: "extend_parent_node_start", Description: "Extend to the start of the parent node"},
			{Keys: "A-e", Command: "extend_parent_node_end", Description: "Extend to the end of the parent node"},
		},
	}
}

// DefaultInsertKeymap returns default insert mode bindings.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   ModeInsert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "tab", Command: "supertab", Description: "Indent or jump past the parent node"},
			{Keys: "S-tab", Command: "insert_tab", Description: "Insert indentation"},
		},
	}
}
