package keymap

import (
	"reflect"
	"testing"

	"github.com/dshills/treenav/internal/input/key"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
	return r
}

func TestDefaultBindings(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		mode    string
		keys    string
		command string
	}{
		{ModeNormal, "A-a", "select_all_siblings"},
		{ModeNormal, "A-S-i", "select_all_children"},
		{ModeNormal, "A-b", "move_parent_node_start"},
		{ModeNormal, "A-e", "move_parent_node_end"},
		{ModeSelect, "A-b", "extend_parent_node_start"},
		{ModeSelect, "A-e", "extend_parent_node_end"},
		{ModeInsert, "tab", "supertab"},
		{ModeInsert, "S-tab", "insert_tab"},
	}

	for _, tt := range tests {
		b, ok := r.LookupSpec(tt.mode, tt.keys)
		if !ok {
			t.Errorf("%s %s: expected binding", tt.mode, tt.keys)
			continue
		}
		if b.Command != tt.command {
			t.Errorf("%s %s: expected %s, got %s", tt.mode, tt.keys, tt.command, b.Command)
		}
	}

	if _, ok := r.Lookup(ModeNormal, key.NewSpecialEvent(key.KeyTab, key.ModNone)); ok {
		t.Error("expected tab unbound in normal mode")
	}
}

func TestApplyOverrides(t *testing.T) {
	r := defaultRegistry(t)

	err := ApplyOverrides(r, map[string]map[string]string{
		ModeInsert: {"tab": "insert_tab", "C-space": "supertab"},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides failed: %v", err)
	}

	if b, _ := r.LookupSpec(ModeInsert, "tab"); b.Command != "insert_tab" {
		t.Errorf("expected tab rebound to insert_tab, got %s", b.Command)
	}
	if got := r.KeysFor(ModeInsert, "supertab"); !reflect.DeepEqual(got, []string{"C-space"}) {
		t.Errorf("expected supertab on C-space, got %v", got)
	}
	if b, _ := r.LookupSpec(ModeNormal, "A-a"); b.Command != "select_all_siblings" {
		t.Error("expected other modes untouched")
	}
}

func TestOverrideErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]map[string]string
	}{
		{"unknown mode", map[string]map[string]string{"visual": {"a": "supertab"}}},
		{"bad key", map[string]map[string]string{ModeNormal: {"X-a": "supertab"}}},
		{"empty command", map[string]map[string]string{ModeNormal: {"a": ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyOverrides(NewRegistry(), tt.bindings); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestUnbindAndCommands(t *testing.T) {
	r := defaultRegistry(t)

	if err := r.Unbind(ModeInsert, "S-tab"); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.LookupSpec(ModeInsert, "S-tab"); ok {
		t.Error("expected S-tab unbound")
	}

	want := []string{
		"extend_parent_node_end",
		"extend_parent_node_start",
		"move_parent_node_end",
		"move_parent_node_start",
		"redo",
		"select_all_children",
		"select_all_siblings",
		"supertab",
		"undo",
	}
	if got := r.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBindingsSorted(t *testing.T) {
	r := defaultRegistry(t)
	got := r.Bindings(ModeNormal)
	if len(got) != 6 {
		t.Fatalf("expected 6 bindings, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Keys > got[i].Keys {
			t.Errorf("bindings not sorted: %v", got)
		}
	}
}
