package api

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/treenav/internal/engine/cursor"
	"github.com/dshills/treenav/internal/plugin/security"
)

// CommandRunner runs structural commands against the active document.
type CommandRunner interface {
	// RunCommand runs a command once and returns the new selection.
	RunCommand(ctx context.Context, command string) (cursor.Selection, error)

	// Selection returns the current selection.
	Selection() (cursor.Selection, error)

	// SetSelection replaces the current selection.
	SetSelection(sel cursor.Selection) error
}

// StructureModule implements the tn.structure API module.
type StructureModule struct {
	runner CommandRunner
}

// NewStructureModule creates a structure module over runner.
func NewStructureModule(runner CommandRunner) *StructureModule {
	return &StructureModule{runner: runner}
}

// Name returns the module name.
func (m *StructureModule) Name() string {
	return "structure"
}

// RequiredCapability returns the capability required for this module.
func (m *StructureModule) RequiredCapability() security.Capability {
	return security.CapabilityCursor
}

// structureCommands are exposed as functions of the same name.
var structureCommands = []string{
	"select_all_siblings",
	"select_all_children",
	"move_parent_node_start",
	"extend_parent_node_start",
	"move_parent_node_end",
	"extend_parent_node_end",
	"supertab",
}

// Register registers the module into the Lua state.
func (m *StructureModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	for _, name := range structureCommands {
		L.SetField(mod, name, L.NewFunction(m.command(name)))
	}
	L.SetField(mod, "run", L.NewFunction(m.run))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "set_selection", L.NewFunction(m.setSelection))

	L.SetGlobal(GlobalName(m.Name()), mod)
	return nil
}

// command returns a function running name with no arguments.
func (m *StructureModule) command(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		return m.runCommand(L, name)
	}
}

// run(name) -> {ranges}
// Runs a command or action by name.
func (m *StructureModule) run(L *lua.LState) int {
	return m.runCommand(L, L.CheckString(1))
}

func (m *StructureModule) runCommand(L *lua.LState, name string) int {
	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sel, err := m.runner.RunCommand(ctx, name)
	if err != nil {
		L.RaiseError("%s: %v", name, err)
		return 0
	}
	L.Push(selectionToTable(L, sel))
	return 1
}

// selection() -> {ranges}
// Returns the current selection.
func (m *StructureModule) selection(L *lua.LState) int {
	sel, err := m.runner.Selection()
	if err != nil {
		L.RaiseError("selection: %v", err)
		return 0
	}
	L.Push(selectionToTable(L, sel))
	return 1
}

// set_selection({ranges}) -> nil
// Replaces the selection. The first range marked primary becomes primary,
// otherwise the first range.
func (m *StructureModule) setSelection(L *lua.LState) int {
	tbl := L.CheckTable(1)

	sel, ok := tableToSelection(tbl)
	if !ok {
		L.ArgError(1, "expected a non-empty list of {anchor=, head=} with non-negative offsets")
		return 0
	}
	if err := m.runner.SetSelection(sel); err != nil {
		L.RaiseError("set_selection: %v", err)
		return 0
	}
	return 0
}

// selectionToTable converts sel to a list of {anchor, head, primary}.
func selectionToTable(L *lua.LState, sel cursor.Selection) *lua.LTable {
	tbl := L.CreateTable(sel.Len(), 0)
	for i, r := range sel.Ranges() {
		rt := L.CreateTable(0, 3)
		L.SetField(rt, "anchor", lua.LNumber(r.Anchor))
		L.SetField(rt, "head", lua.LNumber(r.Head))
		L.SetField(rt, "primary", lua.LBool(i == sel.PrimaryIndex()))
		tbl.RawSetInt(i+1, rt)
	}
	return tbl
}

func tableToSelection(tbl *lua.LTable) (cursor.Selection, bool) {
	n := tbl.Len()
	if n == 0 {
		return cursor.Selection{}, false
	}

	ranges := make([]cursor.Range, 0, n)
	primary := -1
	for i := 1; i <= n; i++ {
		rt, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return cursor.Selection{}, false
		}
		anchor, ok1 := offsetField(rt, "anchor")
		head, ok2 := offsetField(rt, "head")
		if !ok1 || !ok2 {
			return cursor.Selection{}, false
		}
		if primary < 0 && lua.LVAsBool(rt.RawGetString("primary")) {
			primary = i - 1
		}
		ranges = append(ranges, cursor.NewRange(anchor, head))
	}
	if primary < 0 {
		primary = 0
	}
	return cursor.NewSelection(ranges, primary), true
}

func offsetField(t *lua.LTable, key string) (cursor.ByteOffset, bool) {
	n, ok := t.RawGetString(key).(lua.LNumber)
	if !ok || n < 0 || float64(n) != float64(int64(n)) {
		return 0, false
	}
	return cursor.ByteOffset(n), true
}
