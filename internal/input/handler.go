package input

import (
	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
)

// Dispatch ingests one event. Button transitions use the current pointer
// position. Dispatch never fails; unknown keys and buttons are ignored.
func (s *State) Dispatch(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		s.HandleKey(e.Key, e.State)
	case ButtonEvent:
		s.HandleButton(e.Button, e.State, s.pointer)
	case MoveEvent:
		s.HandleMove(e.Position)
	case ResizeEvent:
		s.HandleResize(e.Size)
	case DPIChangeEvent:
		s.HandleDPIChange(e.Factor)
	case CloseRequest:
		s.HandleCloseRequest()
	}
}

// DispatchAll ingests events in order.
func (s *State) DispatchAll(events []Event) {
	for _, ev := range events {
		s.Dispatch(ev)
	}
}

// HandleKey records a key transition. Out-of-range keys are a no-op.
func (s *State) HandleKey(k key.Key, st ElementState) {
	ks := s.keyState(k)
	if ks == nil {
		return
	}
	s.logger.Debug("key input %s %s", k, st)

	if st == Pressed {
		ks.Press()
	} else {
		ks.Release()
	}
}

// HandleButton records a button transition at pos. On release, a drag in
// progress is finalized; otherwise the release is registered as a click.
// Out-of-range buttons are a no-op.
func (s *State) HandleButton(b mouse.Button, st ElementState, pos geom.Position) {
	bs := s.buttonState(b)
	if bs == nil {
		return
	}
	s.logger.Debug("mouse button input %s %s at %s", b, st, pos)

	if st == Pressed {
		bs.Press(pos)
		return
	}

	outcome := bs.Release(pos)
	s.logger.Debug("mouse button %s release resolved as %s", b, outcome)
}

// HandleMove updates the pointer position and feeds it to the drag
// detector of every button that is down.
func (s *State) HandleMove(pos geom.Position) {
	s.pointer = pos

	for i := range s.buttons {
		if s.buttons[i].Move(pos, s.dragThreshold) {
			s.logger.Debug("mouse drag started for %s at %s", mouse.Button(i), pos)
		}
	}
}

// HandleResize records a new window size.
func (s *State) HandleResize(size geom.Size) {
	s.windowSize = size
}

// HandleDPIChange records a new DPI scale factor.
func (s *State) HandleDPIChange(factor float64) {
	s.logger.Debug("dpi scaling factor changed %g", factor)
	s.dpiFactor = factor
}

// HandleCloseRequest forwards the request to the terminator. It changes
// no local state.
func (s *State) HandleCloseRequest() {
	s.logger.Debug("close requested")
	if s.terminator != nil {
		s.terminator.RequestTermination()
	}
}
