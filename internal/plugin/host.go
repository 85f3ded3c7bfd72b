package plugin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dshills/treenav/internal/plugin/api"
	plua "github.com/dshills/treenav/internal/plugin/lua"
	"github.com/dshills/treenav/internal/plugin/security"
)

// Host manages a single script's Lua state.
type Host struct {
	mu sync.Mutex

	name     string
	state    *plua.State
	registry *api.Registry
	checker  *security.PermissionChecker

	// Options
	capabilities     []security.Capability
	executionTimeout time.Duration
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithName names the host in capability errors.
func WithName(name string) HostOption {
	return func(h *Host) {
		h.name = name
	}
}

// WithCapabilities sets the capabilities granted to the script. The
// default grants editor.cursor.
func WithCapabilities(caps ...security.Capability) HostOption {
	return func(h *Host) {
		h.capabilities = caps
	}
}

// WithHostExecutionTimeout sets the timeout for each script execution.
func WithHostExecutionTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.executionTimeout = d
	}
}

// NewHost creates a host whose scripts run commands through runner.
func NewHost(runner api.CommandRunner, opts ...HostOption) (*Host, error) {
	h := &Host{
		name:             "script",
		capabilities:     []security.Capability{security.CapabilityCursor},
		executionTimeout: plua.DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.checker = security.NewPermissionChecker(h.name)
	h.checker.GrantAll(h.capabilities)

	registry, err := api.DefaultRegistry(runner)
	if err != nil {
		return nil, err
	}
	h.registry = registry

	state, err := plua.NewState(
		plua.WithPermissions(h.checker),
		plua.WithExecutionTimeout(h.executionTimeout),
	)
	if err != nil {
		return nil, err
	}
	if err := registry.InjectAll(state.LuaState(), h.checker); err != nil {
		state.Close()
		return nil, fmt.Errorf("inject api modules: %w", err)
	}
	h.state = state
	return h, nil
}

// Name returns the host name.
func (h *Host) Name() string {
	return h.name
}

// Modules returns the API modules injected into the script.
func (h *Host) Modules() []string {
	var names []string
	for _, name := range h.registry.List() {
		mod, _ := h.registry.Get(name)
		if req := mod.RequiredCapability(); req == "" || h.checker.HasCapability(req) {
			names = append(names, name)
		}
	}
	return names
}

// Run executes the script at path and returns its results as Go values.
func (h *Host) Run(ctx context.Context, path string) ([]any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	values, err := h.state.RunFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	results := make([]any, len(values))
	for i, v := range values {
		results[i] = plua.ToGoValue(v)
	}
	return results, nil
}

// DoString executes a Lua chunk.
func (h *Host) DoString(ctx context.Context, code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.DoString(ctx, code)
}

// Close releases the Lua state.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Close()
}
