package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/treenav/internal/plugin/security"
)

// ModulePrefix is the require name under which host modules are preloaded.
const ModulePrefix = "tn"

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L       *lua.LState
	checker *security.PermissionChecker
}

// NewSandbox creates a sandbox for L consulting checker.
func NewSandbox(L *lua.LState, checker *security.PermissionChecker) *Sandbox {
	return &Sandbox{L: L, checker: checker}
}

var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// Install removes the loaders that can reach the filesystem and replaces
// require. With the unsafe capability the io, os and debug libraries are
// opened instead.
func (s *Sandbox) Install() error {
	if s.checker.HasCapability(security.CapabilityUnsafe) {
		openLib(s.L, lua.IoLibName, lua.OpenIo)
		openLib(s.L, lua.OsLibName, lua.OpenOs)
		openLib(s.L, lua.DebugLibName, lua.OpenDebug)
		return nil
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	original := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !Allowed(name) {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
	return nil
}

// Allowed reports whether require may load name inside the sandbox.
func Allowed(name string) bool {
	return safeModules[name] || name == ModulePrefix || strings.HasPrefix(name, ModulePrefix+".")
}

// CheckCapability returns an error if the capability is not granted.
func (s *Sandbox) CheckCapability(c security.Capability) error {
	return s.checker.CheckCapability(c)
}
