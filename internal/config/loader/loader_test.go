package loader

import (
	"errors"
	"io/fs"
	"testing"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

type section struct {
	TabWidth int    `toml:"tab_width" yaml:"tab_width" envconfig:"TAB_WIDTH"`
	Policy   string `toml:"policy" yaml:"policy" envconfig:"POLICY"`
}

type testConfig struct {
	Editor section `toml:"editor" yaml:"editor"`
}

func TestLoadFileTOML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
tab_width = 2
policy = "unanimous"
`)

	cfg := testConfig{Editor: section{TabWidth: 4}}
	found, err := LoadFile(memfs, "/config.toml", &cfg)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !found {
		t.Fatal("expected file to be found")
	}
	if cfg.Editor.TabWidth != 2 || cfg.Editor.Policy != "unanimous" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadFileYAML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yml", "editor:\n  policy: per_cursor\n")

	cfg := testConfig{Editor: section{TabWidth: 4}}
	if _, err := LoadFile(memfs, "/config.yml", &cfg); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Editor.TabWidth != 4 || cfg.Editor.Policy != "per_cursor" {
		t.Errorf("expected defaults kept and policy set, got %+v", cfg)
	}

	memfs.AddFile("/empty.yaml", "")
	if _, err := LoadFile(memfs, "/empty.yaml", &cfg); err != nil {
		t.Errorf("expected empty YAML to be accepted, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := testConfig{Editor: section{TabWidth: 4}}
	found, err := LoadFile(NewMemFS(), "/missing.toml", &cfg)
	if err != nil || found {
		t.Errorf("expected missing file to be ignored, got found=%v err=%v", found, err)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Error("expected config untouched")
	}
}

func TestLoadFileErrors(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor]\ntab_width = \n")
	memfs.AddFile("/unknown.toml", "[editor]\ncolour = 1\n")
	memfs.AddFile("/unknown.yaml", "editor:\n  colour: 1\n")
	memfs.AddFile("/config.json", "{}")

	var cfg testConfig
	for _, path := range []string{"/bad.toml", "/unknown.toml", "/unknown.yaml"} {
		_, err := LoadFile(memfs, path, &cfg)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected *ParseError, got %v", path, err)
			continue
		}
		if perr.Path != path {
			t.Errorf("%s: expected path in error, got %q", path, perr.Path)
		}
	}

	if _, err := LoadFile(memfs, "/config.json", &cfg); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor]\ntab_width = \n")

	var cfg testConfig
	_, err := LoadFile(memfs, "/bad.toml", &cfg)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TREENAV_EDITOR_TAB_WIDTH", "8")

	cfg := testConfig{Editor: section{TabWidth: 4, Policy: "per_cursor"}}
	if err := LoadEnv(DefaultEnvPrefix, &cfg); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.Editor.TabWidth)
	}
	if cfg.Editor.Policy != "per_cursor" {
		t.Errorf("expected unset variable to keep value, got %q", cfg.Editor.Policy)
	}

	t.Setenv("TREENAV_EDITOR_TAB_WIDTH", "wide")
	if err := LoadEnv(DefaultEnvPrefix, &cfg); err == nil {
		t.Error("expected error for non-numeric value")
	}
}
