// Package config loads and validates treenav configuration.
//
// Configuration is resolved in layers, later layers overriding earlier:
//
//  1. Built-in defaults (Default)
//  2. The configuration file, TOML or YAML by extension
//  3. Environment variables with the TREENAV prefix
//
// Command line flags are applied by the caller on the returned Config.
//
// Example config.toml:
//
//	[editor]
//	tab_width = 4
//	indent_size = 4
//	use_tabs = false
//
//	[keys]
//	supertab = "move_parent_node_end"
//	supertab_policy = "per_cursor"
//
//	[keys.bindings.normal]
//	"A-n" = "select_all_siblings"
//
//	[log]
//	level = "info"
//	format = "text"
//
// Environment overrides are named TREENAV_<SECTION>_<FIELD>, e.g.
// TREENAV_LOG_LEVEL or TREENAV_KEYS_SUPERTAB_POLICY.
package config
