package backend

import (
	"testing"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/key"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if size := b.Size(); size != (geom.Size{Width: 80, Height: 24}) {
		t.Errorf("expected size 80x24, got %v", size)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	want := input.KeyEvent{Key: key.KeyA, State: input.Pressed}
	b.PostEvent(want)

	select {
	case got := <-b.Events():
		if got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	default:
		t.Error("expected event in queue")
	}
}

func TestNullBackendPostClose(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.PostClose()

	if ev := <-b.Events(); ev != (input.CloseRequest{}) {
		t.Errorf("expected close request, got %v", ev)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Resize(120, 40)

	if size := b.Size(); size.Width != 120 || size.Height != 40 {
		t.Errorf("expected size 120x40, got %v", size)
	}
	ev := <-b.Events()
	if resize, ok := ev.(input.ResizeEvent); !ok || resize.Size.Width != 120 {
		t.Errorf("expected resize event, got %v", ev)
	}
}

func TestNullBackendDraw(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Draw([]string{"one", "two"})
	b.Draw([]string{"three"})

	lines := b.Lines()
	if len(lines) != 1 || lines[0] != "three" {
		t.Errorf("Lines() = %q, want [three]", lines)
	}
	if b.Draws() != 2 {
		t.Errorf("Draws() = %d, want 2", b.Draws())
	}
}

func TestNullBackendShutdown(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Shutdown()
	b.Shutdown()

	// Posting after shutdown must not panic.
	b.PostEvent(input.CloseRequest{})

	if _, ok := <-b.Events(); ok {
		t.Error("expected events channel closed")
	}
}

func TestNullBackendImplementsBackend(t *testing.T) {
	var _ Backend = NewNullBackend(1, 1)
	var _ Backend = (*Terminal)(nil)
}
