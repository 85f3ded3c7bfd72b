package dispatcher_test

import (
	"reflect"
	"testing"

	"github.com/dshills/treenav/internal/dispatcher"
	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/input"
)

func structureNamespace() *handler.BaseNamespaceHandler {
	ns := handler.NewBaseNamespaceHandler("structure")
	ns.Register("structure.selectAllSiblings", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})
	return ns
}

func TestRouterRegisterNamespace(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("structure", structureNamespace())

	if !router.HasNamespace("structure") {
		t.Error("expected HasNamespace to be true")
	}

	router.UnregisterNamespace("structure")
	if router.HasNamespace("structure") {
		t.Error("expected HasNamespace to be false after unregister")
	}
}

func TestRouterRoute(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("structure", structureNamespace())

	if h := router.Route("structure.selectAllSiblings"); h == nil {
		t.Fatal("expected handler for structure.selectAllSiblings")
	}
	if h := router.Route("structure.unknown"); h != nil {
		t.Error("expected nil handler for unknown action")
	}
	if h := router.Route("editor.insertIndent"); h != nil {
		t.Error("expected nil handler for unknown namespace")
	}
}

func TestRouterFallback(t *testing.T) {
	router := dispatcher.NewRouter()
	router.SetFallback(handler.NewHandlerFunc(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("fallback")
	}))

	if !router.CanRoute("anything") {
		t.Error("expected CanRoute to be true with fallback")
	}

	h := router.Route("unknown.action")
	if h == nil {
		t.Fatal("expected fallback handler")
	}
	if result := h.Handle(input.NewAction("unknown"), execctx.New()); result.Message != "fallback" {
		t.Errorf("expected fallback message, got %q", result.Message)
	}
}

func TestRouterCanRoute(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("structure", structureNamespace())

	tests := []struct {
		name string
		want bool
	}{
		{"structure.selectAllSiblings", true},
		{"structure.unknown", false},
		{"editor.insertIndent", false},
		{"noNamespace", false},
	}
	for _, tt := range tests {
		if got := router.CanRoute(tt.name); got != tt.want {
			t.Errorf("CanRoute(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestRouterNamespaces(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("structure", handler.NewBaseNamespaceHandler("structure"))
	router.RegisterNamespace("editor", handler.NewBaseNamespaceHandler("editor"))

	if got := router.Namespaces(); !reflect.DeepEqual(got, []string{"editor", "structure"}) {
		t.Errorf("expected sorted namespaces, got %v", got)
	}
}

func TestBuildActionName(t *testing.T) {
	tests := []struct {
		namespace string
		action    string
		expected  string
	}{
		{"structure", "supertab", "structure.supertab"},
		{"", "supertab", "supertab"},
	}

	for _, tc := range tests {
		if got := dispatcher.BuildActionName(tc.namespace, tc.action); got != tc.expected {
			t.Errorf("BuildActionName(%q, %q) = %q, want %q", tc.namespace, tc.action, got, tc.expected)
		}
	}
}
