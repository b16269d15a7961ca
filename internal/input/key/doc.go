// Package key defines keyboard key identifiers and per-key state.
//
// Keys are dense, bounded integers. Only keys whose value is below Capacity
// have storage; anything else (including KeyUnknown) is a valid input that
// the state store ignores:
//
//	if i, ok := key.Index(k); ok {
//	    keys[i].Press()
//	}
//
// # Key Names
//
// Every named key has a canonical name returned by String and accepted by
// Parse (case-insensitive), so "a", "A", "Escape", "esc" and "F5" all
// resolve. Names are used by configuration and the Lua frame hooks.
package key
