// Package plugin runs Lua scripts against the structural commands.
//
// A Host owns one sandboxed Lua state with the API modules its
// capabilities allow:
//
//	host, err := plugin.NewHost(app, plugin.WithCapabilities(security.CapabilityCursor))
//	if err != nil {
//	    return err
//	}
//	defer host.Close()
//	results, err := host.Run(ctx, "expand.lua")
package plugin
