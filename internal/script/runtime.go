package script

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
	"github.com/dshills/framestate/internal/logging"
)

// DefaultExecutionTimeout bounds a single hook call.
const DefaultExecutionTimeout = 100 * time.Millisecond

// frameHook is the global function called once per frame.
const frameHook = "on_frame"

// Snapshot is the read-only view of the input state that scripts query.
// *input.State implements it.
type Snapshot interface {
	WindowSize() geom.Size
	DPIFactor() float64

	IsKeyDown(k key.Key) bool
	IsKeyJustDown(k key.Key) bool
	IsKeyJustUp(k key.Key) bool

	MousePosition() geom.Position
	IsMouseDown(b mouse.Button) bool
	IsMouseJustDown(b mouse.Button) bool
	IsMouseJustUp(b mouse.Button) bool
	MouseButtonJustClickedPosition(b mouse.Button) (geom.Position, bool)
	MouseDragInProgress(b mouse.Button) (mouse.DragState, bool)
	MouseDragJustFinished(b mouse.Button) (mouse.DragState, bool)
}

// Runtime is a sandboxed Lua state bound to an input snapshot.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls
// from Go.
type Runtime struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool

	snapshot Snapshot
	logger   *logging.Logger
	timeout  time.Duration
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger that receives print output and hook traces.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithExecutionTimeout sets the deadline for a single script call.
// Zero disables the deadline.
func WithExecutionTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		r.timeout = d
	}
}

// New creates a sandboxed runtime whose input module reads snapshot.
func New(snapshot Snapshot, opts ...Option) *Runtime {
	r := &Runtime{
		snapshot: snapshot,
		logger:   logging.Null,
		timeout:  DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	openSafeLibraries(L)
	installSandbox(L, r.logger)
	registerInputModule(L, snapshot)

	r.L = L
	return r
}

// LoadFile executes a Lua file, typically defining on_frame.
func (r *Runtime) LoadFile(path string) error {
	return r.run(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// LoadString executes a chunk of Lua code.
func (r *Runtime) LoadString(code string) error {
	return r.run(func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// HasFrameHook reports whether the script defines on_frame.
func (r *Runtime) HasFrameHook() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	return r.L.GetGlobal(frameHook).Type() == lua.LTFunction
}

// Frame calls on_frame(n) if the script defines it.
func (r *Runtime) Frame(n uint64) error {
	err := r.run(func(L *lua.LState) error {
		fn := L.GetGlobal(frameHook)
		if fn.Type() != lua.LTFunction {
			return nil
		}
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(n))
	})
	if err != nil {
		return fmt.Errorf("%s(%d): %w", frameHook, n, err)
	}
	return nil
}

// Close releases the Lua state. Further calls return ErrScriptClosed.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.L.Close()
	r.closed = true
	return nil
}

// run executes fn under the mutex with the execution deadline and panic
// recovery.
func (r *Runtime) run(fn func(L *lua.LState) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrScriptClosed
	}

	if r.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.L.SetContext(ctx)
		defer r.L.RemoveContext()

		defer func() {
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
			}
		}()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()

	return fn(r.L)
}
