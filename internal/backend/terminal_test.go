package backend

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/key"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen, WithKeyRelease(false))
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, screen
}

// nextEvent skips resize notifications the screen may emit on its own.
func nextEvent(t *testing.T, term *Terminal) input.Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-term.Events():
			if _, ok := ev.(input.ResizeEvent); ok {
				continue
			}
			return ev
		case <-timeout:
			t.Fatal("timed out waiting for event")
			return nil
		}
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)

	if ev := nextEvent(t, term); ev != (input.KeyEvent{Key: key.KeyD, State: input.Pressed}) {
		t.Errorf("expected D pressed, got %v", ev)
	}
}

func TestTerminalPostClose(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostClose()

	if ev := nextEvent(t, term); ev != (input.CloseRequest{}) {
		t.Errorf("expected close request, got %v", ev)
	}
}

func TestTerminalSize(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.SetSize(40, 10)

	size := term.Size()
	if size.Width != 40 || size.Height != 10 {
		t.Errorf("expected size 40x10, got %v", size)
	}
}

func TestTerminalDraw(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.SetSize(10, 2)

	term.Draw([]string{"frame 1", "a line longer than the screen", "dropped"})

	cells, w, _ := screen.GetContents()
	row := func(y int) string {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.Write(cells[y*w+x].Bytes)
		}
		return b.String()
	}
	if got := row(0); !strings.HasPrefix(got, "frame 1") {
		t.Errorf("row 0 = %q, want prefix %q", got, "frame 1")
	}
	if got := row(1); got != "a line lon" {
		t.Errorf("row 1 = %q, want %q", got, "a line lon")
	}
}

func TestTerminalShutdownClosesEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	term.Shutdown()
	term.Shutdown()

	for range term.Events() {
	}
}
