package app

import (
	"fmt"
	"strings"

	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
)

// Drawer receives the status display lines.
type Drawer interface {
	Draw(lines []string)
}

// Display is a frame hook that renders a textual view of the input state.
// Events that last a single frame (key presses, clicks, finished drags)
// are remembered until the next one so they stay readable.
type Display struct {
	drawer  Drawer
	session string

	lastKeys  []key.Key
	lastClick string
	lastDrag  string
}

// NewDisplay creates a status display drawing to d.
func NewDisplay(d Drawer, session string) *Display {
	return &Display{drawer: d, session: session}
}

// OnFrame draws the current state.
func (d *Display) OnFrame(n uint64, state *input.State) error {
	d.drawer.Draw(d.Lines(n, state))
	return nil
}

// Lines builds the display contents for frame n.
func (d *Display) Lines(n uint64, state *input.State) []string {
	var pressed []key.Key
	for i := 0; i < key.Capacity; i++ {
		if state.IsKeyJustDown(key.Key(i)) {
			pressed = append(pressed, key.Key(i))
		}
	}
	if len(pressed) > 0 {
		d.lastKeys = pressed
	}

	var buttons, drags []string
	for i := 0; i < mouse.Capacity; i++ {
		b := mouse.Button(i)
		if state.IsMouseDown(b) {
			buttons = append(buttons, b.String())
		}
		if pos, ok := state.MouseButtonJustClickedPosition(b); ok {
			d.lastClick = fmt.Sprintf("%s at %s", b, pos)
		}
		if drag, ok := state.MouseDragJustFinished(b); ok {
			d.lastDrag = fmt.Sprintf("%s %s -> %s total %s", b, drag.Begin, drag.End, drag.AccumulatedFrameDelta)
		}
		if drag, ok := state.MouseDragInProgress(b); ok {
			drags = append(drags, fmt.Sprintf("%s %s -> %s delta %s", b, drag.Begin, drag.End, drag.PreviousFrameDelta))
		}
	}

	session := d.session
	if len(session) > 8 {
		session = session[:8]
	}

	return []string{
		fmt.Sprintf("framestate  frame %d  session %s", n, session),
		fmt.Sprintf("window %s  dpi %g  pointer %s", state.WindowSize(), state.DPIFactor(), state.MousePosition()),
		"last keys: " + orNone(joinKeys(d.lastKeys)),
		"buttons down: " + orNone(strings.Join(buttons, " ")),
		"dragging: " + orNone(strings.Join(drags, "; ")),
		"last click: " + orNone(d.lastClick),
		"last drag: " + orNone(d.lastDrag),
		"",
		"press Ctrl+C or Ctrl+Q to quit",
	}
}

func joinKeys(keys []key.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
