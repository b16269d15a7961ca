package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
)

// registerInputModule installs the global "input" table.
func registerInputModule(L *lua.LState, snap Snapshot) {
	keyQuery := func(query func(key.Key) bool) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LBool(query(checkKey(L, 1))))
			return 1
		}
	}
	buttonQuery := func(query func(mouse.Button) bool) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LBool(query(checkButton(L, 1))))
			return 1
		}
	}
	dragQuery := func(query func(mouse.Button) (mouse.DragState, bool)) lua.LGFunction {
		return func(L *lua.LState) int {
			d, ok := query(checkButton(L, 1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(dragTable(L, d))
			return 1
		}
	}

	funcs := map[string]lua.LGFunction{
		"key_down":      keyQuery(snap.IsKeyDown),
		"key_just_down": keyQuery(snap.IsKeyJustDown),
		"key_just_up":   keyQuery(snap.IsKeyJustUp),

		"mouse_down":      buttonQuery(snap.IsMouseDown),
		"mouse_just_down": buttonQuery(snap.IsMouseJustDown),
		"mouse_just_up":   buttonQuery(snap.IsMouseJustUp),

		"mouse_position": func(L *lua.LState) int {
			p := snap.MousePosition()
			L.Push(lua.LNumber(p.X))
			L.Push(lua.LNumber(p.Y))
			return 2
		},

		"clicked": func(L *lua.LState) int {
			p, ok := snap.MouseButtonJustClickedPosition(checkButton(L, 1))
			if !ok {
				L.Push(lua.LFalse)
				return 1
			}
			L.Push(lua.LTrue)
			L.Push(lua.LNumber(p.X))
			L.Push(lua.LNumber(p.Y))
			return 3
		},

		"drag":          dragQuery(snap.MouseDragInProgress),
		"drag_finished": dragQuery(snap.MouseDragJustFinished),

		"window_size": func(L *lua.LState) int {
			s := snap.WindowSize()
			L.Push(lua.LNumber(s.Width))
			L.Push(lua.LNumber(s.Height))
			return 2
		},

		"dpi": func(L *lua.LState) int {
			L.Push(lua.LNumber(snap.DPIFactor()))
			return 1
		},
	}

	L.SetGlobal("input", L.SetFuncs(L.NewTable(), funcs))
}

// checkKey reads argument n as a key name or raw key code.
func checkKey(L *lua.LState, n int) key.Key {
	switch v := L.CheckAny(n).(type) {
	case lua.LNumber:
		if v < 0 || v >= lua.LNumber(key.KeyUnknown) {
			return key.KeyUnknown
		}
		return key.Key(v)
	case lua.LString:
		k, err := key.Parse(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return k
	default:
		L.TypeError(n, lua.LTString)
		return key.KeyUnknown
	}
}

// checkButton reads argument n as a button name or raw button identifier.
func checkButton(L *lua.LState, n int) mouse.Button {
	switch v := L.CheckAny(n).(type) {
	case lua.LNumber:
		if v < 0 {
			L.ArgError(n, "button must be >= 0")
		}
		if v >= mouse.Capacity {
			// Out of range for the store; every query reports false.
			return mouse.Capacity
		}
		return mouse.Button(v)
	case lua.LString:
		b, ok := mouse.ParseButton(strings.ToLower(string(v)))
		if !ok {
			L.ArgError(n, "unknown button "+string(v))
		}
		return b
	default:
		L.TypeError(n, lua.LTString)
		return 0
	}
}

// dragTable converts a drag to {begin_x, begin_y, end_x, end_y, dx, dy,
// total_x, total_y}.
func dragTable(L *lua.LState, d mouse.DragState) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("begin_x", lua.LNumber(d.Begin.X))
	t.RawSetString("begin_y", lua.LNumber(d.Begin.Y))
	t.RawSetString("end_x", lua.LNumber(d.End.X))
	t.RawSetString("end_y", lua.LNumber(d.End.Y))
	t.RawSetString("dx", lua.LNumber(d.PreviousFrameDelta.X))
	t.RawSetString("dy", lua.LNumber(d.PreviousFrameDelta.Y))
	t.RawSetString("total_x", lua.LNumber(d.AccumulatedFrameDelta.X))
	t.RawSetString("total_y", lua.LNumber(d.AccumulatedFrameDelta.Y))
	return t
}
