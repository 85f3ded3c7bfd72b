package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/treenav/internal/config/loader"
	"github.com/dshills/treenav/internal/engine/structure"
	"github.com/dshills/treenav/internal/input/keymap"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.Equal(t, 4, cfg.Editor.IndentSize)
	assert.False(t, cfg.Editor.UseTabs)
	assert.Equal(t, 1000, cfg.Editor.UndoLimit)
	assert.Equal(t, "move_parent_node_end", cfg.Keys.Supertab)
	assert.Equal(t, "info", cfg.Log.Level)

	opts, err := cfg.SupertabOptions()
	require.NoError(t, err)
	assert.Equal(t, structure.DefaultSupertabOptions(), opts)
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/cfg/config.toml": `
[editor]
indent_size = 2
use_tabs = true

[keys]
supertab = "extend_parent_node_end"
supertab_policy = "unanimous"

[keys.bindings.normal]
"A-n" = "select_all_siblings"

[log]
level = "debug"
format = "json"
`}

	cfg, err := LoadFS(fsys, "/cfg/config.toml")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Editor.TabWidth, "unset values keep defaults")
	assert.Equal(t, 2, cfg.Editor.IndentSize)
	assert.True(t, cfg.Editor.UseTabs)
	assert.Equal(t, "json", cfg.Log.Format)

	opts, err := cfg.SupertabOptions()
	require.NoError(t, err)
	assert.Equal(t, structure.SupertabOptions{Boundary: structure.BoundaryEnd, Movement: structure.Extend, Policy: structure.Unanimous}, opts)

	r, err := cfg.Keymaps()
	require.NoError(t, err)
	b, ok := r.LookupSpec(keymap.ModeNormal, "A-n")
	require.True(t, ok)
	assert.Equal(t, "select_all_siblings", b.Command)
	b, ok = r.LookupSpec(keymap.ModeNormal, "A-a")
	require.True(t, ok, "defaults stay bound")
	assert.Equal(t, "select_all_siblings", b.Command)
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/cfg/config.yaml": `
editor:
  tab_width: 8
keys:
  bindings:
    insert:
      tab: insert_tab
`}

	cfg, err := LoadFS(fsys, "/cfg/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Editor.TabWidth)

	r, err := cfg.Keymaps()
	require.NoError(t, err)
	b, ok := r.LookupSpec(keymap.ModeInsert, "tab")
	require.True(t, ok)
	assert.Equal(t, "insert_tab", b.Command)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFS(memFS{}, "/nowhere/config.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nindent_size = 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Editor.IndentSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TREENAV_LOG_LEVEL", "warn")
	t.Setenv("TREENAV_KEYS_SUPERTAB_POLICY", "unanimous")

	fsys := memFS{"/config.toml": "[log]\nlevel = \"debug\"\n"}
	cfg, err := LoadFS(fsys, "/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "environment overrides the file")
	assert.Equal(t, "unanimous", cfg.Keys.SupertabPolicy)
}

func TestLoadParseError(t *testing.T) {
	fsys := memFS{"/config.toml": "[editor\n"}

	_, err := LoadFS(fsys, "/config.toml")
	var perr *loader.ParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, "/config.toml", perr.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		problem string
	}{
		{"tab width", func(c *Config) { c.Editor.TabWidth = 0 }, "editor.tab_width"},
		{"indent size", func(c *Config) { c.Editor.IndentSize = 40 }, "editor.indent_size"},
		{"undo limit", func(c *Config) { c.Editor.UndoLimit = 0 }, "editor.undo_limit"},
		{"supertab command", func(c *Config) { c.Keys.Supertab = "select_all_siblings" }, "unknown supertab command"},
		{"supertab policy", func(c *Config) { c.Keys.SupertabPolicy = "sometimes" }, "unknown supertab policy"},
		{"binding mode", func(c *Config) {
			c.Keys.Bindings = map[string]map[string]string{"visual": {"A-a": "select_all_siblings"}}
		}, `unknown mode "visual"`},
		{"binding key", func(c *Config) {
			c.Keys.Bindings = map[string]map[string]string{"normal": {"": "select_all_siblings"}}
		}, "keys.bindings.normal"},
		{"binding command", func(c *Config) {
			c.Keys.Bindings = map[string]map[string]string{"normal": {"A-a": "delete_everything"}}
		}, `unknown command "delete_everything"`},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 0
	cfg.Log.Format = "xml"

	var verr *ValidationError
	require.ErrorAs(t, cfg.Validate(), &verr)
	assert.Len(t, verr.Problems, 2)
}
