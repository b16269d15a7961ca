package script

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
	"github.com/dshills/framestate/internal/logging"
)

func newRuntime(t *testing.T, s *input.State, opts ...Option) *Runtime {
	t.Helper()
	r := New(s, opts...)
	t.Cleanup(func() { r.Close() })
	return r
}

func global(t *testing.T, r *Runtime, name string) lua.LValue {
	t.Helper()
	return r.L.GetGlobal(name)
}

func TestSandbox(t *testing.T) {
	r := newRuntime(t, input.New())

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "loadstring", "require"} {
		if v := global(t, r, name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs", "input"} {
		if v := global(t, r, name); v == lua.LNil {
			t.Errorf("global %s missing", name)
		}
	}
}

func TestFrameHook(t *testing.T) {
	r := newRuntime(t, input.New())

	if r.HasFrameHook() {
		t.Error("HasFrameHook() = true before loading")
	}
	if err := r.Frame(1); err != nil {
		t.Errorf("Frame() without hook = %v, want nil", err)
	}

	if err := r.LoadString(`frames = {} function on_frame(n) table.insert(frames, n) end`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if !r.HasFrameHook() {
		t.Fatal("HasFrameHook() = false after loading")
	}

	for n := uint64(1); n <= 3; n++ {
		if err := r.Frame(n); err != nil {
			t.Fatalf("Frame(%d) error = %v", n, err)
		}
	}

	frames := global(t, r, "frames").(*lua.LTable)
	if frames.Len() != 3 || frames.RawGetInt(3) != lua.LNumber(3) {
		t.Errorf("frames = %d entries, last %v", frames.Len(), frames.RawGetInt(3))
	}
}

func TestFrameHookError(t *testing.T) {
	r := newRuntime(t, input.New())

	if err := r.LoadString(`function on_frame(n) error("boom") end`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	err := r.Frame(7)
	if err == nil {
		t.Fatal("Frame() error = nil")
	}
	if !strings.Contains(err.Error(), "on_frame(7)") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Frame() error = %q", err)
	}
	var apiErr *lua.ApiError
	if !errors.As(err, &apiErr) {
		t.Errorf("Frame() error does not wrap *lua.ApiError: %T", err)
	}
}

func TestExecutionTimeout(t *testing.T) {
	r := newRuntime(t, input.New(), WithExecutionTimeout(20*time.Millisecond))

	if err := r.LoadString(`function on_frame(n) while true do end end`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	err := r.Frame(1)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("Frame() error = %v, want ErrExecutionTimeout", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.lua")
	if err := os.WriteFile(path, []byte("loaded = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := newRuntime(t, input.New())
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if global(t, r, "loaded") != lua.LTrue {
		t.Error("file not executed")
	}

	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("LoadFile(missing) error = nil")
	}
}

func TestClosed(t *testing.T) {
	r := New(input.New())
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if err := r.LoadString("x = 1"); !errors.Is(err, ErrScriptClosed) {
		t.Errorf("LoadString() after Close = %v, want ErrScriptClosed", err)
	}
	if err := r.Frame(1); !errors.Is(err, ErrScriptClosed) {
		t.Errorf("Frame() after Close = %v, want ErrScriptClosed", err)
	}
	if r.HasFrameHook() {
		t.Error("HasFrameHook() after Close = true")
	}
}

func TestPrintLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Output: &buf})
	r := newRuntime(t, input.New(), WithLogger(logger))

	if err := r.LoadString(`print("hello", 42)`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if !strings.Contains(buf.String(), "hello\t42") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestInputModuleKeys(t *testing.T) {
	s := input.New()
	r := newRuntime(t, s)

	s.HandleKey(key.KeySpace, input.Pressed)
	s.HandleKey(key.KeyA, input.Pressed)
	s.HandleKey(key.KeyA, input.Released)

	err := r.LoadString(`
		space_down = input.key_down("space")
		space_just = input.key_just_down("Space")
		a_up = input.key_just_up("a")
		w_down = input.key_down("w")
		raw = input.key_down(` + strconv.Itoa(int(key.KeySpace)) + `)
		huge = input.key_down(100000)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	tests := map[string]lua.LValue{
		"space_down": lua.LTrue,
		"space_just": lua.LTrue,
		"a_up":       lua.LTrue,
		"w_down":     lua.LFalse,
		"raw":        lua.LTrue,
		"huge":       lua.LFalse,
	}
	for name, want := range tests {
		if got := global(t, r, name); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestInputModuleBadArguments(t *testing.T) {
	r := newRuntime(t, input.New())

	for _, code := range []string{
		`input.key_down("nosuchkey")`,
		`input.key_down()`,
		`input.mouse_down("thumb")`,
		`input.mouse_down(-1)`,
		`input.clicked({})`,
	} {
		if err := r.LoadString(code); err == nil {
			t.Errorf("%s: error = nil", code)
		}
	}
}

func TestInputModuleMouse(t *testing.T) {
	s := input.New(input.WithWindowSize(geom.Size{Width: 80, Height: 24}), input.WithDPIFactor(2))
	r := newRuntime(t, s)

	s.HandleMove(geom.Pos(3, 4))
	s.HandleButton(mouse.ButtonRight, input.Pressed, geom.Pos(3, 4))
	s.HandleButton(mouse.ButtonRight, input.Released, geom.Pos(3, 4))
	s.HandleButton(mouse.ButtonLeft, input.Pressed, geom.Pos(3, 4))

	err := r.LoadString(`
		px, py = input.mouse_position()
		left_down = input.mouse_down("left")
		left_raw = input.mouse_just_down(0)
		right_up = input.mouse_just_up("right")
		clicked, cx, cy = input.clicked("right")
		not_clicked = input.clicked("left")
		other = input.mouse_down("other(2)")
		w, h = input.window_size()
		dpi = input.dpi()
		no_drag = input.drag("left")
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	tests := map[string]lua.LValue{
		"px":          lua.LNumber(3),
		"py":          lua.LNumber(4),
		"left_down":   lua.LTrue,
		"left_raw":    lua.LTrue,
		"right_up":    lua.LTrue,
		"clicked":     lua.LTrue,
		"cx":          lua.LNumber(3),
		"cy":          lua.LNumber(4),
		"not_clicked": lua.LFalse,
		"other":       lua.LFalse,
		"w":           lua.LNumber(80),
		"h":           lua.LNumber(24),
		"dpi":         lua.LNumber(2),
		"no_drag":     lua.LNil,
	}
	for name, want := range tests {
		if got := global(t, r, name); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestInputModuleDrag(t *testing.T) {
	s := input.New()
	r := newRuntime(t, s)

	s.HandleMove(geom.Pos(5, 5))
	s.HandleButton(mouse.ButtonLeft, input.Pressed, geom.Pos(5, 5))
	s.HandleMove(geom.Pos(20, 20))

	if err := r.LoadString(`d = input.drag("left")`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	d, ok := global(t, r, "d").(*lua.LTable)
	if !ok {
		t.Fatal("drag() did not return a table")
	}
	if d.RawGetString("begin_x") != lua.LNumber(5) || d.RawGetString("total_x") != lua.LNumber(15) {
		t.Errorf("drag table begin_x=%v total_x=%v", d.RawGetString("begin_x"), d.RawGetString("total_x"))
	}

	s.HandleButton(mouse.ButtonLeft, input.Released, geom.Pos(20, 20))
	if err := r.LoadString(`f = input.drag_finished("left")`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	f, ok := global(t, r, "f").(*lua.LTable)
	if !ok {
		t.Fatal("drag_finished() did not return a table")
	}
	if f.RawGetString("end_x") != lua.LNumber(20) || f.RawGetString("end_y") != lua.LNumber(20) {
		t.Errorf("finished end = (%v, %v)", f.RawGetString("end_x"), f.RawGetString("end_y"))
	}
}
