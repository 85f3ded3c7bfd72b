package plugin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/treenav/internal/engine/cursor"
	plua "github.com/dshills/treenav/internal/plugin/lua"
	"github.com/dshills/treenav/internal/plugin/security"
)

// echoRunner returns the current selection for every command.
type echoRunner struct {
	sel      cursor.Selection
	commands []string
}

func (r *echoRunner) RunCommand(_ context.Context, command string) (cursor.Selection, error) {
	r.commands = append(r.commands, command)
	return r.sel, nil
}

func (r *echoRunner) Selection() (cursor.Selection, error) { return r.sel, nil }

func (r *echoRunner) SetSelection(sel cursor.Selection) error {
	r.sel = sel
	return nil
}

func writeScript(t *testing.T, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lua")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHostRun(t *testing.T) {
	runner := &echoRunner{sel: cursor.Single(cursor.Point(0))}
	host, err := NewHost(runner)
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	defer host.Close()

	path := writeScript(t, `
		local s = require("tn").structure
		s.set_selection({{anchor = 3, head = 7}})
		return s.supertab()
	`)
	results, err := host.Run(context.Background(), path)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []any{[]any{map[string]any{"anchor": int64(3), "head": int64(7), "primary": true}}}
	if !reflect.DeepEqual(results, want) {
		t.Errorf("expected %v, got %v", want, results)
	}
	if !reflect.DeepEqual(runner.commands, []string{"supertab"}) {
		t.Errorf("unexpected commands %v", runner.commands)
	}
	if !reflect.DeepEqual(host.Modules(), []string{"structure"}) {
		t.Errorf("unexpected modules %v", host.Modules())
	}
}

func TestHostWithoutCursorCapability(t *testing.T) {
	host, err := NewHost(&echoRunner{}, WithName("readonly"), WithCapabilities(security.CapabilityBuffer))
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	defer host.Close()

	if host.Name() != "readonly" || len(host.Modules()) != 0 {
		t.Errorf("unexpected host %q modules %v", host.Name(), host.Modules())
	}
	if err := host.DoString(context.Background(), `assert(require("tn").structure == nil)`); err != nil {
		t.Errorf("expected structure module to be withheld, got %v", err)
	}
}

func TestHostTimeoutAndClose(t *testing.T) {
	host, err := NewHost(&echoRunner{}, WithHostExecutionTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	_, err = host.Run(context.Background(), writeScript(t, `while true do end`))
	if !errors.Is(err, plua.ErrExecutionTimeout) {
		t.Errorf("expected timeout, got %v", err)
	}

	if err := host.Close(); err != nil {
		t.Fatal(err)
	}
	if err := host.DoString(context.Background(), `x = 1`); !errors.Is(err, plua.ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
}
