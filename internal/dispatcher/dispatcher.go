package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/input"
)

// Logger is the logging interface used by the dispatcher.
// Messages are printf-style format strings.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Document is the editor state a dispatcher operates on.
// engine.Document implements it.
type Document interface {
	execctx.EngineInterface
	execctx.CursorManagerInterface
	execctx.SyntaxInterface
}

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router

	doc Document

	config  Config
	metrics *Metrics
	logger  Logger

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
		logger:   nopLogger{},
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	if config.MaxRepeatCount > 0 {
		d.preHooks = append(d.preHooks, NewCountLimitHook(config.MaxRepeatCount))
	}

	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetLogger sets the logger. A nil logger disables logging.
func (d *Dispatcher) SetLogger(l Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l == nil {
		l = nopLogger{}
	}
	d.logger = l
}

// SetDocument sets the document actions operate on.
func (d *Dispatcher) SetDocument(doc Document) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doc = doc
}

// Registry returns the exact-name handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	return d.DispatchContext(context.Background(), action)
}

// DispatchContext executes an action with ctx available to the handler for
// blocking work such as parsing.
func (d *Dispatcher) DispatchContext(c context.Context, action input.Action) handler.Result {
	start := time.Now()

	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	ctx := d.buildContext(c)
	if action.Count > 0 {
		ctx.Count = action.Count
	}

	if !d.runPreHooks(&action, ctx) {
		return handler.Error(fmt.Errorf("%w: %s", ErrActionCancelled, action.Name))
	}

	h := d.router.Route(action.Name)
	if h == nil {
		h = d.registry.Get(action.Name)
	}
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	d.runPostHooks(&action, ctx, &result)

	elapsed := time.Since(start)
	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, elapsed, result.Status)
	}
	if d.config.SlowDispatch > 0 && elapsed > d.config.SlowDispatch {
		d.log().Warn("slow dispatch: %s took %s", action.Name, elapsed)
	}

	return result
}

// executeWithRecovery executes a handler, turning a panic into an error result.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.log().Error("handler panic for %s: %v\n%s", action.Name, r, stack[:n])

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action, ctx)
}

func (d *Dispatcher) buildContext(c context.Context) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New().WithContext(c)
	if d.doc != nil {
		ctx.WithEngine(d.doc).WithCursors(d.doc).WithSyntax(d.doc)
	}
	return ctx
}

func (d *Dispatcher) log() Logger {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.logger
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn handler.Func) {
	d.registry.Register(actionName, handler.NewHandlerFunc(fn))
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// UnregisterHandler removes the handlers for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// HasHandler returns true if the action can be dispatched.
func (d *Dispatcher) HasHandler(actionName string) bool {
	return d.router.CanRoute(actionName) || d.registry.Has(actionName)
}

// Namespaces returns the registered namespaces.
func (d *Dispatcher) Namespaces() []string {
	return d.router.Namespaces()
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}
