package input

import (
	"fmt"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
)

// ElementState is the transition carried by a key or button event.
type ElementState uint8

const (
	// Released indicates the key or button went up.
	Released ElementState = iota
	// Pressed indicates the key or button went down.
	Pressed
)

// String returns a string representation of the element state.
func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Event is one semantic input notification from the platform event source.
// The concrete types are KeyEvent, ButtonEvent, MoveEvent, ResizeEvent,
// DPIChangeEvent and CloseRequest.
type Event interface {
	fmt.Stringer
	isEvent()
}

// KeyEvent reports a key transition.
type KeyEvent struct {
	Key   key.Key
	State ElementState
}

// ButtonEvent reports a pointer button transition. It carries no position:
// the transition happens at the current pointer position.
type ButtonEvent struct {
	Button mouse.Button
	State  ElementState
}

// MoveEvent reports a new pointer position in logical units.
type MoveEvent struct {
	Position geom.Position
}

// ResizeEvent reports a new window size in logical units.
type ResizeEvent struct {
	Size geom.Size
}

// DPIChangeEvent reports a new DPI scale factor.
type DPIChangeEvent struct {
	Factor float64
}

// CloseRequest reports that the user asked to close the window.
type CloseRequest struct{}

func (KeyEvent) isEvent()       {}
func (ButtonEvent) isEvent()    {}
func (MoveEvent) isEvent()      {}
func (ResizeEvent) isEvent()    {}
func (DPIChangeEvent) isEvent() {}
func (CloseRequest) isEvent()   {}

func (e KeyEvent) String() string {
	return fmt.Sprintf("key %s %s", e.Key, e.State)
}

func (e ButtonEvent) String() string {
	return fmt.Sprintf("button %s %s", e.Button, e.State)
}

func (e MoveEvent) String() string {
	return "move " + e.Position.String()
}

func (e ResizeEvent) String() string {
	return "resize " + e.Size.String()
}

func (e DPIChangeEvent) String() string {
	return fmt.Sprintf("dpi %g", e.Factor)
}

func (CloseRequest) String() string {
	return "close requested"
}

// Terminator receives orderly shutdown requests. The state store forwards
// each CloseRequest to it exactly once and keeps no shutdown state itself.
type Terminator interface {
	RequestTermination()
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func()

// RequestTermination calls f.
func (f TerminatorFunc) RequestTermination() {
	f()
}
