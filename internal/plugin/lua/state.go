package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/treenav/internal/plugin/security"
)

// DefaultExecutionTimeout bounds a single DoFile, DoString or Call.
const DefaultExecutionTimeout = 5 * time.Second

// State wraps gopher-lua with a sandbox and execution timeouts.
type State struct {
	L *lua.LState

	mu sync.Mutex

	executionTimeout time.Duration
	checker          *security.PermissionChecker
	sandbox          *Sandbox

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for each execution. Zero disables
// the timeout.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithPermissions sets the capabilities the sandbox consults.
func WithPermissions(pc *security.PermissionChecker) StateOption {
	return func(s *State) {
		s.checker = pc
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) (*State, error) {
	state := &State{
		executionTimeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(state)
	}
	if state.checker == nil {
		state.checker = security.NewPermissionChecker("")
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.L = L

	openSafeLibraries(L)

	state.sandbox = NewSandbox(L, state.checker)
	if err := state.sandbox.Install(); err != nil {
		L.Close()
		return nil, err
	}
	return state, nil
}

// openSafeLibraries opens only safe Lua standard libraries. The package
// library backs require and PreloadModule; the sandbox strips its search
// paths.
func openSafeLibraries(L *lua.LState) {
	openLib(L, lua.LoadLibName, lua.OpenPackage)
	openLib(L, lua.BaseLibName, lua.OpenBase)
	openLib(L, lua.TabLibName, lua.OpenTable)
	openLib(L, lua.StringLibName, lua.OpenString)
	openLib(L, lua.MathLibName, lua.OpenMath)
}

func openLib(L *lua.LState, name string, fn lua.LGFunction) {
	L.Push(L.NewFunction(fn))
	L.Push(lua.LString(name))
	L.Call(1, 0)
}

// DoFile executes a Lua file.
func (s *State) DoFile(ctx context.Context, path string) error {
	_, err := s.RunFile(ctx, path)
	return err
}

// RunFile executes a Lua file and returns the values the chunk returns.
func (s *State) RunFile(ctx context.Context, path string) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.run(ctx, func() error {
		fn, err := s.L.LoadFile(path)
		if err != nil {
			return err
		}
		results, err = s.pcall(fn)
		return err
	})
	return results, err
}

// DoString executes a Lua chunk.
func (s *State) DoString(ctx context.Context, code string) error {
	return s.run(ctx, func() error {
		fn, err := s.L.LoadString(code)
		if err != nil {
			return err
		}
		_, err = s.pcall(fn)
		return err
	})
}

// Call calls a global Lua function and returns its results.
// Returns an empty slice (not nil) if the function returns no values.
func (s *State) Call(ctx context.Context, fn string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.run(ctx, func() error {
		fnVal, ok := s.L.GetGlobal(fn).(*lua.LFunction)
		if !ok {
			return fmt.Errorf("%w: %q (got %s)", ErrFunctionNotFound, fn, s.L.GetGlobal(fn).Type())
		}
		var err error
		results, err = s.pcall(fnVal, args...)
		return err
	})
	return results, err
}

// pcall calls fn in protected mode and pops its results off the stack.
func (s *State) pcall(fn *lua.LFunction, args ...lua.LValue) ([]lua.LValue, error) {
	top := s.L.GetTop()
	s.L.Push(fn)
	for _, arg := range args {
		s.L.Push(arg)
	}
	if err := s.L.PCall(len(args), lua.MultRet, nil); err != nil {
		return nil, err
	}

	n := s.L.GetTop() - top
	results := make([]lua.LValue, n)
	for i := 0; i < n; i++ {
		results[i] = s.L.Get(top + i + 1)
	}
	s.L.Pop(n)
	return results, nil
}

// run executes fn under the state lock with the execution timeout and
// panic recovery.
func (s *State) run(ctx context.Context, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// LuaState returns the underlying gopher-lua state for module
// registration. Callers must not use it concurrently with the State.
func (s *State) LuaState() *lua.LState {
	return s.L
}

// Sandbox returns the sandbox.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// Permissions returns the capabilities the state was created with.
func (s *State) Permissions() *security.PermissionChecker {
	return s.checker
}

// Close releases the Lua state. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
