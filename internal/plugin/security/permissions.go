package security

import (
	"sort"
	"sync"
)

// PermissionChecker tracks the capabilities granted to one script.
type PermissionChecker struct {
	mu sync.RWMutex

	capabilities map[Capability]bool
	name         string
}

// NewPermissionChecker creates a checker with no capabilities.
func NewPermissionChecker(name string) *PermissionChecker {
	return &PermissionChecker{
		capabilities: make(map[Capability]bool),
		name:         name,
	}
}

// Name returns the name of the script the checker guards.
func (pc *PermissionChecker) Name() string {
	return pc.name
}

// Grant grants a capability.
func (pc *PermissionChecker) Grant(c Capability) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.capabilities[c] = true
}

// Revoke revokes a capability. Implied children are revoked with it.
func (pc *PermissionChecker) Revoke(c Capability) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	delete(pc.capabilities, c)
}

// GrantAll grants multiple capabilities.
func (pc *PermissionChecker) GrantAll(caps []Capability) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for _, c := range caps {
		pc.capabilities[c] = true
	}
}

// HasCapability returns true if c or one of its parents is granted.
func (pc *PermissionChecker) HasCapability(c Capability) bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	for granted := range pc.capabilities {
		if ImpliesCapability(granted, c) {
			return true
		}
	}
	return false
}

// CheckCapability returns a *CapabilityError if c is not granted.
func (pc *PermissionChecker) CheckCapability(c Capability) error {
	if !pc.HasCapability(c) {
		return NewCapabilityError(c, pc.name, "not granted")
	}
	return nil
}

// Capabilities returns the granted capabilities, sorted.
func (pc *PermissionChecker) Capabilities() []Capability {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	caps := make([]Capability, 0, len(pc.capabilities))
	for c := range pc.capabilities {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}
