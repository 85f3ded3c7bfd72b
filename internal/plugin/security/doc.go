// Package security provides the capability model for Lua scripts.
//
// Capabilities are hierarchical: granting "editor" implies
// "editor.cursor". API modules declare the capability they need and are
// only injected into scripts that hold it.
package security
