package security

import (
	"fmt"
	"sort"
	"strings"
)

// Capability represents a permission that a script can hold.
type Capability string

// Capabilities understood by the API modules.
const (
	// CapabilityEditor grants access to editor internals.
	CapabilityEditor Capability = "editor"

	// CapabilityCursor grants selection access, including structural
	// navigation.
	CapabilityCursor Capability = "editor.cursor"

	// CapabilityBuffer grants read access to document text.
	CapabilityBuffer Capability = "editor.buffer"

	// CapabilityUnsafe grants the full Lua stdlib (io, os, debug).
	CapabilityUnsafe Capability = "unsafe"
)

// CapabilityInfo provides metadata about a capability.
type CapabilityInfo struct {
	Name        Capability
	Description string
	Parent      Capability
}

var capabilityInfo = map[Capability]CapabilityInfo{
	CapabilityEditor: {
		Name:        CapabilityEditor,
		Description: "Access editor internals",
	},
	CapabilityCursor: {
		Name:        CapabilityCursor,
		Description: "Read and change selections",
		Parent:      CapabilityEditor,
	},
	CapabilityBuffer: {
		Name:        CapabilityBuffer,
		Description: "Read document text",
		Parent:      CapabilityEditor,
	},
	CapabilityUnsafe: {
		Name:        CapabilityUnsafe,
		Description: "Full Lua standard library",
	},
}

// GetCapabilityInfo returns metadata for a capability.
func GetCapabilityInfo(c Capability) (CapabilityInfo, bool) {
	info, ok := capabilityInfo[c]
	return info, ok
}

// IsValidCapability reports whether c is a known capability.
func IsValidCapability(c Capability) bool {
	_, ok := capabilityInfo[c]
	return ok
}

// ParseCapabilities converts names to capabilities, rejecting unknown ones.
func ParseCapabilities(names []string) ([]Capability, error) {
	caps := make([]Capability, 0, len(names))
	for _, name := range names {
		c := Capability(strings.TrimSpace(name))
		if !IsValidCapability(c) {
			return nil, NewCapabilityError(c, "", "unknown capability")
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// AllCapabilities returns every known capability, sorted.
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityInfo))
	for c := range capabilityInfo {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// IsChildOf returns true if child is a child of parent.
func IsChildOf(child, parent Capability) bool {
	return strings.HasPrefix(string(child), string(parent)+".")
}

// ImpliesCapability returns true if holding granted implies holding required.
func ImpliesCapability(granted, required Capability) bool {
	return granted == required || IsChildOf(required, granted)
}

// CapabilityError represents a missing or unknown capability.
type CapabilityError struct {
	Capability Capability
	Operation  string
	Message    string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("capability %q required for %s: %s", e.Capability, e.Operation, e.Message)
	}
	return fmt.Sprintf("capability %q: %s", e.Capability, e.Message)
}

// NewCapabilityError creates a new capability error.
func NewCapabilityError(c Capability, operation, message string) *CapabilityError {
	return &CapabilityError{
		Capability: c,
		Operation:  operation,
		Message:    message,
	}
}
