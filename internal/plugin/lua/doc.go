// Package lua runs sandboxed Lua scripts on gopher-lua.
//
// A State opens only the safe standard libraries (base, table, string,
// math) and replaces require with a version that loads those libraries
// and modules preloaded by the host under the "tn" prefix. Scripts
// granted the unsafe capability also get io, os and debug.
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoFile(ctx, "navigate.lua"); err != nil {
//	    return err
//	}
//
// gopher-lua's LState is not goroutine-safe; State serializes access.
package lua
