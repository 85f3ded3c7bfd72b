// Package api provides the Lua modules exposed to treenav scripts.
//
// Scripts reach the modules through the "tn" namespace:
//
//	local tn = require("tn")
//	tn.structure.set_selection({{anchor = 14, head = 15}})
//	local ranges = tn.structure.select_all_siblings()
//	for _, r in ipairs(ranges) do print(r.anchor, r.head, r.primary) end
//
// Each module implements Module and declares the capability it needs. A
// Registry injects only the modules a script's PermissionChecker allows.
// Offsets are zero-based byte offsets.
package api
