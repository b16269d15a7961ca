// Package script runs Lua frame hooks against the input snapshot.
//
// A script defines a global on_frame(n) function that the frame loop calls
// once per frame, after the frame's events are ingested and before the
// frame boundary. The script reads input through the "input" module:
//
//	function on_frame(n)
//	    if input.key_just_down("space") then
//	        print("jump on frame " .. n)
//	    end
//	    local d = input.drag_finished("left")
//	    if d then
//	        print(string.format("dragged %g,%g", d.total_x, d.total_y))
//	    end
//	end
//
// The Lua state is sandboxed: only the base, table, string and math
// libraries are available, and file loading functions are removed.
package script
