package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/treenav/internal/config/loader"
	structurehandler "github.com/dshills/treenav/internal/dispatcher/handlers/structure"
	"github.com/dshills/treenav/internal/engine/structure"
	"github.com/dshills/treenav/internal/input/key"
	"github.com/dshills/treenav/internal/input/keymap"
)

// Config holds all treenav configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Keys   KeysConfig   `toml:"keys" yaml:"keys"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig holds indentation settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab.
	TabWidth int `toml:"tab_width" yaml:"tab_width" envconfig:"TAB_WIDTH"`

	// IndentSize is the number of spaces of one indent unit.
	IndentSize int `toml:"indent_size" yaml:"indent_size" envconfig:"INDENT_SIZE"`

	// UseTabs indents with a tab instead of spaces.
	UseTabs bool `toml:"use_tabs" yaml:"use_tabs" envconfig:"USE_TABS"`

	// UndoLimit is the number of edits each document can undo.
	UndoLimit int `toml:"undo_limit" yaml:"undo_limit" envconfig:"UNDO_LIMIT"`
}

// KeysConfig holds key binding settings.
type KeysConfig struct {
	// Supertab is the parent navigation command supertab runs for cursors
	// that are not preceded by whitespace.
	Supertab string `toml:"supertab" yaml:"supertab" envconfig:"SUPERTAB"`

	// SupertabPolicy is "per_cursor" or "unanimous".
	SupertabPolicy string `toml:"supertab_policy" yaml:"supertab_policy" envconfig:"SUPERTAB_POLICY"`

	// Bindings maps mode -> key -> command, layered over the defaults.
	Bindings map[string]map[string]string `toml:"bindings" yaml:"bindings" ignored:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" envconfig:"LEVEL"`
	Format string `toml:"format" yaml:"format" envconfig:"FORMAT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:   4,
			IndentSize: 4,
			UndoLimit:  1000,
		},
		Keys: KeysConfig{
			Supertab:       structurehandler.CommandMoveParentNodeEnd,
			SupertabPolicy: structure.PerCursor.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the default configuration file path,
// $XDG_CONFIG_HOME/treenav/config.toml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "treenav", "config.toml")
}

// Load returns the defaults overridden by the file at path and the
// environment, validated. An empty path uses DefaultPath; a missing file
// is not an error.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load reading files from fsys.
func LoadFS(fsys loader.FileSystem, path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := loader.LoadFile(fsys, path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := loader.LoadEnv(loader.DefaultEnvPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and that every configured command exists.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		add("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	if c.Editor.IndentSize < 1 || c.Editor.IndentSize > 16 {
		add("editor.indent_size must be between 1 and 16, got %d", c.Editor.IndentSize)
	}
	if c.Editor.UndoLimit < 1 {
		add("editor.undo_limit must be positive, got %d", c.Editor.UndoLimit)
	}

	if _, err := c.SupertabOptions(); err != nil {
		add("keys: %v", err)
	}

	modes := make([]string, 0, len(c.Keys.Bindings))
	for mode := range c.Keys.Bindings {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		if !keymap.IsMode(mode) {
			add("keys.bindings: unknown mode %q", mode)
			continue
		}
		specs := make([]string, 0, len(c.Keys.Bindings[mode]))
		for spec := range c.Keys.Bindings[mode] {
			specs = append(specs, spec)
		}
		sort.Strings(specs)
		for _, spec := range specs {
			if _, err := key.Parse(spec); err != nil {
				add("keys.bindings.%s: %v", mode, err)
			}
			command := c.Keys.Bindings[mode][spec]
			if _, ok := structurehandler.ResolveCommand(command); !ok {
				add("keys.bindings.%s.%s: unknown command %q", mode, spec, command)
			}
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		add("log.format must be text or json, got %q", c.Log.Format)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// SupertabOptions returns the supertab navigation and policy.
func (c *Config) SupertabOptions() (structure.SupertabOptions, error) {
	policy, err := structurehandler.ParsePolicy(c.Keys.SupertabPolicy)
	if err != nil {
		return structure.SupertabOptions{}, err
	}
	return structurehandler.SupertabOptions(c.Keys.Supertab, policy)
}

// Keymaps returns a keymap registry with the default bindings and the
// configured overrides.
func (c *Config) Keymaps() (*keymap.Registry, error) {
	r := keymap.NewRegistry()
	if err := keymap.LoadDefaults(r); err != nil {
		return nil, err
	}
	if err := keymap.ApplyOverrides(r, c.Keys.Bindings); err != nil {
		return nil, err
	}
	return r, nil
}
