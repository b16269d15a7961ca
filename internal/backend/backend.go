// Package backend provides the platform event source and status display
// for framestate.
//
// The Terminal backend is built on tcell: a polling goroutine translates
// terminal events into input events (see Translator) and delivers them on
// a channel in arrival order.
package backend

import (
	"sync"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
)

// Backend defines the interface for event source and display backends.
type Backend interface {
	// Init initializes the backend for use and starts event delivery.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// The Events channel is closed once delivery stops.
	Shutdown()

	// Size returns the current display size in logical units.
	Size() geom.Size

	// Events returns the channel of translated input events.
	Events() <-chan input.Event

	// PostClose asks the backend to deliver a CloseRequest through the
	// event stream, as if the user had closed the window.
	PostClose()

	// Draw replaces the display contents with lines, one per row.
	Draw(lines []string)
}

// NullBackend is a backend fed by hand, for testing.
type NullBackend struct {
	mu     sync.Mutex
	size   geom.Size
	events chan input.Event
	closed bool
	lines  []string
	draws  int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		size:   geom.Size{Width: float64(width), Height: float64(height)},
		events: make(chan input.Event, 100),
	}
}

func (b *NullBackend) Init() error {
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *NullBackend) Size() geom.Size {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.size
}

func (b *NullBackend) Events() <-chan input.Event {
	return b.events
}

func (b *NullBackend) PostClose() {
	b.PostEvent(input.CloseRequest{})
}

func (b *NullBackend) Draw(lines []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines[:0], lines...)
	b.draws++
}

// PostEvent queues an event for delivery.
func (b *NullBackend) PostEvent(ev input.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	select {
	case b.events <- ev:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Resize simulates a display resize, queueing the matching ResizeEvent.
func (b *NullBackend) Resize(width, height int) {
	size := geom.Size{Width: float64(width), Height: float64(height)}

	b.mu.Lock()
	b.size = size
	b.mu.Unlock()

	b.PostEvent(input.ResizeEvent{Size: size})
}

// Lines returns the most recently drawn lines for testing.
func (b *NullBackend) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.lines...)
}

// Draws returns how many times Draw was called.
func (b *NullBackend) Draws() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.draws
}
