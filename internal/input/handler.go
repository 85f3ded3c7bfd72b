package input

import (
	"sync"

	"github.com/dshills/treenav/internal/input/key"
	"github.com/dshills/treenav/internal/input/keymap"
)

// CommandResolver maps a command name to an action name.
type CommandResolver interface {
	ResolveCommand(command string) (string, bool)
}

// CommandResolverFunc adapts a function to CommandResolver.
type CommandResolverFunc func(command string) (string, bool)

// ResolveCommand implements CommandResolver.
func (f CommandResolverFunc) ResolveCommand(command string) (string, bool) {
	return f(command)
}

// Handler resolves key presses to actions.
type Handler struct {
	mu sync.RWMutex

	keymaps  *keymap.Registry
	resolver CommandResolver
	count    int
}

// NewHandler creates a handler over a keymap registry.
func NewHandler(keymaps *keymap.Registry, resolver CommandResolver) *Handler {
	return &Handler{keymaps: keymaps, resolver: resolver}
}

// SetCount sets the repeat count attached to the next action.
func (h *Handler) SetCount(count int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count = count
}

// HandleKey returns the action bound to ev in mode. The pending count is
// consumed by a successful lookup.
func (h *Handler) HandleKey(mode string, ev key.Event) (Action, bool) {
	b, ok := h.keymaps.Lookup(mode, ev)
	if !ok {
		return Action{}, false
	}
	name, ok := h.resolver.ResolveCommand(b.Command)
	if !ok {
		return Action{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	action := NewAction(name).WithSource(SourceKeyboard).WithCount(h.count)
	h.count = 0
	return action, true
}

// HandleSpec is HandleKey for a key specification.
func (h *Handler) HandleSpec(mode, spec string) (Action, bool) {
	ev, err := key.Parse(spec)
	if err != nil {
		return Action{}, false
	}
	return h.HandleKey(mode, ev)
}
