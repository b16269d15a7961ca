package input

import (
	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
	"github.com/dshills/framestate/internal/logging"
)

// State is the per-frame input snapshot and the store behind it.
//
// It is owned by a single frame loop: events are ingested through the
// Handle methods or Dispatch, queried, and then EndFrame is called once.
// State is not synchronized.
type State struct {
	windowSize geom.Size
	dpiFactor  float64

	keys [key.Capacity]key.State

	pointer geom.Position
	buttons [mouse.Capacity]mouse.ButtonState

	dragThreshold float64
	terminator    Terminator
	logger        *logging.Logger
}

// Option configures a State.
type Option func(*State)

// WithWindowSize sets the initial window size.
func WithWindowSize(size geom.Size) Option {
	return func(s *State) {
		s.windowSize = size
	}
}

// WithDPIFactor sets the initial DPI scale factor.
func WithDPIFactor(factor float64) Option {
	return func(s *State) {
		s.dpiFactor = factor
	}
}

// WithDragThreshold sets the drag threshold in logical units.
func WithDragThreshold(threshold float64) Option {
	return func(s *State) {
		s.dragThreshold = threshold
	}
}

// WithTerminator sets the collaborator that receives close requests.
func WithTerminator(t Terminator) Option {
	return func(s *State) {
		s.terminator = t
	}
}

// WithLogger sets the logger used to trace ingested events.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a State with every key and button up and no one-shot state.
func New(opts ...Option) *State {
	s := &State{
		dpiFactor:     1,
		dragThreshold: mouse.DefaultDragThreshold,
		logger:        logging.Null,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDragThreshold changes the drag threshold. Drags already in progress
// are unaffected.
func (s *State) SetDragThreshold(threshold float64) {
	s.dragThreshold = threshold
}

// DragThreshold returns the drag threshold in logical units.
func (s *State) DragThreshold() float64 {
	return s.dragThreshold
}

//
// Queries
//

// WindowSize returns the window size in logical units.
func (s *State) WindowSize() geom.Size {
	return s.windowSize
}

// DPIFactor returns the DPI scale factor.
func (s *State) DPIFactor() float64 {
	return s.dpiFactor
}

// IsKeyDown returns true while k is held.
func (s *State) IsKeyDown(k key.Key) bool {
	if ks := s.keyState(k); ks != nil {
		return ks.Down
	}
	return false
}

// IsKeyJustDown returns true if k went down this frame.
func (s *State) IsKeyJustDown(k key.Key) bool {
	if ks := s.keyState(k); ks != nil {
		return ks.JustDown
	}
	return false
}

// IsKeyJustUp returns true if k went up this frame.
func (s *State) IsKeyJustUp(k key.Key) bool {
	if ks := s.keyState(k); ks != nil {
		return ks.JustUp
	}
	return false
}

// MousePosition returns the current pointer position.
func (s *State) MousePosition() geom.Position {
	return s.pointer
}

// IsMouseDown returns true while b is held.
func (s *State) IsMouseDown(b mouse.Button) bool {
	if bs := s.buttonState(b); bs != nil {
		return bs.IsDown()
	}
	return false
}

// IsMouseJustDown returns true if b went down this frame.
func (s *State) IsMouseJustDown(b mouse.Button) bool {
	_, ok := s.MouseJustDownPosition(b)
	return ok
}

// MouseJustDownPosition returns where b went down this frame.
func (s *State) MouseJustDownPosition(b mouse.Button) (geom.Position, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.JustDown()
	}
	return geom.Position{}, false
}

// IsMouseJustUp returns true if b went up this frame.
func (s *State) IsMouseJustUp(b mouse.Button) bool {
	_, ok := s.MouseJustUpPosition(b)
	return ok
}

// MouseJustUpPosition returns where b went up this frame.
func (s *State) MouseJustUpPosition(b mouse.Button) (geom.Position, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.JustUp()
	}
	return geom.Position{}, false
}

// IsMouseButtonJustClicked returns true if a release of b this frame was
// a click rather than the end of a drag.
func (s *State) IsMouseButtonJustClicked(b mouse.Button) bool {
	_, ok := s.MouseButtonJustClickedPosition(b)
	return ok
}

// MouseButtonJustClickedPosition returns where b was clicked this frame.
func (s *State) MouseButtonJustClickedPosition(b mouse.Button) (geom.Position, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.JustClicked()
	}
	return geom.Position{}, false
}

// MouseButtonWentDownPosition returns where b most recently went down.
// Unlike the one-shot queries it survives the frame boundary.
func (s *State) MouseButtonWentDownPosition(b mouse.Button) (geom.Position, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.WentDown()
	}
	return geom.Position{}, false
}

// MouseButtonWentUpPosition returns where b most recently went up.
func (s *State) MouseButtonWentUpPosition(b mouse.Button) (geom.Position, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.WentUp()
	}
	return geom.Position{}, false
}

// IsMouseDragInProgress returns true while b is being dragged.
func (s *State) IsMouseDragInProgress(b mouse.Button) bool {
	_, ok := s.MouseDragInProgress(b)
	return ok
}

// MouseDragInProgress returns the drag in progress for b.
func (s *State) MouseDragInProgress(b mouse.Button) (mouse.DragState, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.DragInProgress()
	}
	return mouse.DragState{}, false
}

// IsMouseDragJustFinished returns true if a drag of b ended this frame.
func (s *State) IsMouseDragJustFinished(b mouse.Button) bool {
	_, ok := s.MouseDragJustFinished(b)
	return ok
}

// MouseDragJustFinished returns the drag of b that ended this frame.
func (s *State) MouseDragJustFinished(b mouse.Button) (mouse.DragState, bool) {
	if bs := s.buttonState(b); bs != nil {
		return bs.DragJustFinished()
	}
	return mouse.DragState{}, false
}

// keyState returns the slot for k, or nil if k is out of range.
func (s *State) keyState(k key.Key) *key.State {
	i, ok := key.Index(k)
	if !ok {
		return nil
	}
	return &s.keys[i]
}

// buttonState returns the slot for b, or nil if b is out of range.
func (s *State) buttonState(b mouse.Button) *mouse.ButtonState {
	i, ok := mouse.Index(b)
	if !ok {
		return nil
	}
	return &s.buttons[i]
}
