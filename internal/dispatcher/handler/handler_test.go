package handler_test

import (
	"reflect"
	"testing"

	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	called := false
	fn := handler.NewHandlerFunc(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})

	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if !called {
		t.Error("expected handler func to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if !fn.CanHandle("anything") || fn.Priority() != 0 {
		t.Error("expected HandlerFunc to accept any action at priority 0")
	}
}

func TestHandlerFuncNil(t *testing.T) {
	fn := &handler.HandlerFunc{}
	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestHandlerFuncWithPriority(t *testing.T) {
	fn := handler.NewHandlerFuncWithPriority(nil, 7)
	if fn.Priority() != 7 {
		t.Errorf("expected priority 7, got %d", fn.Priority())
	}
}

func TestBaseNamespaceHandler(t *testing.T) {
	bnh := handler.NewBaseNamespaceHandler("test")

	called := false
	bnh.Register("test.doSomething", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})
	bnh.Register("test.another", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.NoOp()
	})

	if bnh.Namespace() != "test" {
		t.Errorf("expected namespace 'test', got '%s'", bnh.Namespace())
	}
	if !bnh.CanHandle("test.doSomething") {
		t.Error("expected CanHandle('test.doSomething') to return true")
	}
	if bnh.CanHandle("test.other") {
		t.Error("expected CanHandle('test.other') to return false")
	}
	if got := bnh.Actions(); !reflect.DeepEqual(got, []string{"test.another", "test.doSomething"}) {
		t.Errorf("unexpected actions %v", got)
	}

	result := bnh.HandleAction(input.Action{Name: "test.doSomething"}, execctx.New())
	if !called {
		t.Error("expected action handler to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}

	result = bnh.HandleAction(input.Action{Name: "test.unknown"}, execctx.New())
	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for unknown action, got %v", result.Status)
	}
}

func TestNamespaceAdapter(t *testing.T) {
	bnh := handler.NewBaseNamespaceHandler("test")
	bnh.Register("test.action", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("handled")
	})

	adapter := handler.NewNamespaceAdapter(bnh)

	if !adapter.CanHandle("test.action") {
		t.Error("expected adapter.CanHandle('test.action') to return true")
	}
	if adapter.Priority() != 0 {
		t.Errorf("expected priority 0, got %d", adapter.Priority())
	}

	result := adapter.Handle(input.Action{Name: "test.action"}, execctx.New())
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if result.Message != "handled" {
		t.Errorf("expected message 'handled', got '%s'", result.Message)
	}
}
