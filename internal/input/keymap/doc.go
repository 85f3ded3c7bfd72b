// Package keymap maps keys to command names per editor mode.
//
// Keys use helix notation (see package key) and are stored in canonical
// form, so "A-S-i" and "A-I" name the same binding. A Registry starts from
// the default keymaps and user bindings replace entries key by key:
//
//	r := keymap.NewRegistry()
//	if err := keymap.LoadDefaults(r); err != nil {
//	    return err
//	}
//	if err := keymap.ApplyOverrides(r, cfg.Keys.Bindings); err != nil {
//	    return err
//	}
//	b, ok := r.LookupSpec(keymap.ModeNormal, "A-a") // select_all_siblings
package keymap
