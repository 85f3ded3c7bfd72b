// Package input turns key presses into editor actions.
//
// A key is looked up in the active mode's keymap, which yields a command
// name such as "select_all_siblings". The handler's CommandResolver maps
// that name to the dispatcher action ("structure.selectAllSiblings") and
// the handler returns the Action to dispatch:
//
//	h := input.NewHandler(registry, resolver)
//	action, ok := h.HandleKey(keymap.ModeNormal, key.MustParse("A-a"))
package input
