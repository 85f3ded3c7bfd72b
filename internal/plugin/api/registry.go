package api

import (
	"fmt"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	plua "github.com/dshills/treenav/internal/plugin/lua"
	"github.com/dshills/treenav/internal/plugin/security"
)

// APIVersion is reported to scripts as tn.api_version.
const APIVersion = 1

// Module represents a Lua API module.
type Module interface {
	// Name returns the module name, e.g. "structure".
	Name() string

	// RequiredCapability returns the capability required to use this
	// module, or "" when none is.
	RequiredCapability() security.Capability

	// Register installs the module table as the global GlobalName(Name()).
	Register(L *lua.LState) error
}

// GlobalName returns the global a module registers itself under.
func GlobalName(module string) string {
	return "_" + plua.ModulePrefix + "_" + module
}

// Registry manages API modules and their injection.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}
	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InjectAll registers every module the checker allows and installs the tn
// loader. A nil checker injects only modules with no required capability.
func (r *Registry) InjectAll(L *lua.LState, checker *security.PermissionChecker) error {
	var names []string
	for _, name := range r.List() {
		mod, _ := r.Get(name)
		if req := mod.RequiredCapability(); req != "" {
			if checker == nil || !checker.HasCapability(req) {
				continue
			}
		}
		names = append(names, name)
	}
	return r.Inject(L, checker, names...)
}

// Inject registers the named modules and installs the tn loader. Unlike
// InjectAll it fails when a module's capability is not granted.
func (r *Registry) Inject(L *lua.LState, checker *security.PermissionChecker, moduleNames ...string) error {
	for _, name := range moduleNames {
		mod, ok := r.Get(name)
		if !ok {
			return fmt.Errorf("module %q not found", name)
		}

		if req := mod.RequiredCapability(); req != "" {
			if checker == nil {
				return security.NewCapabilityError(req, "module "+name, "no permission checker")
			}
			if err := checker.CheckCapability(req); err != nil {
				return err
			}
		}

		if err := mod.Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
	}

	installLoader(L, moduleNames)
	return nil
}

// installLoader moves the registered _tn_* globals into a table that
// require("tn") returns.
func installLoader(L *lua.LState, moduleNames []string) {
	root := L.NewTable()
	for _, name := range moduleNames {
		global := GlobalName(name)
		if val := L.GetGlobal(global); val != lua.LNil {
			L.SetField(root, name, val)
			L.SetGlobal(global, lua.LNil)
		}
	}
	L.SetField(root, "api_version", lua.LNumber(APIVersion))

	L.PreloadModule(plua.ModulePrefix, func(L *lua.LState) int {
		L.Push(root)
		return 1
	})
}

// DefaultRegistry creates a registry with the standard modules over runner.
func DefaultRegistry(runner CommandRunner) (*Registry, error) {
	r := NewRegistry()
	for _, mod := range []Module{
		NewStructureModule(runner),
	} {
		if err := r.Register(mod); err != nil {
			return nil, fmt.Errorf("failed to register module %q: %w", mod.Name(), err)
		}
	}
	return r, nil
}
