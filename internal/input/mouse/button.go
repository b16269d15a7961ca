package mouse

import "github.com/dshills/framestate/internal/geom"

// ReleaseOutcome reports how a release was resolved.
type ReleaseOutcome uint8

const (
	// ReleaseClick means no drag was in progress and a click was registered.
	ReleaseClick ReleaseOutcome = iota
	// ReleaseDragFinished means a drag in progress was finalized.
	ReleaseDragFinished
)

// String returns a string representation of the outcome.
func (o ReleaseOutcome) String() string {
	switch o {
	case ReleaseClick:
		return "click"
	case ReleaseDragFinished:
		return "drag-finished"
	default:
		return "unknown"
	}
}

// ButtonState is the per-button slot of the state store.
//
// Optional positions are held as pointers to private copies so that
// "absent" is never confused with a valid (0, 0).
type ButtonState struct {
	down bool

	justDown    *geom.Position
	justUp      *geom.Position
	justClicked *geom.Position

	wentDown *geom.Position
	wentUp   *geom.Position

	dragInProgress   *DragState
	dragJustFinished *DragState
}

// Press records the button going down at pos.
func (s *ButtonState) Press(pos geom.Position) {
	s.justDown = ptr(pos)
	s.down = true
	s.wentDown = ptr(pos)
}

// Release records the button going up at pos and resolves it against the
// drag detector: a drag in progress is finalized, otherwise a click is
// registered. The drag in progress is always cleared.
func (s *ButtonState) Release(pos geom.Position) ReleaseOutcome {
	s.justUp = ptr(pos)
	s.down = false
	s.wentUp = ptr(pos)

	outcome := ReleaseClick
	if s.dragInProgress != nil {
		finished := s.dragInProgress.Advance(pos)
		s.dragJustFinished = &finished
		outcome = ReleaseDragFinished
	} else {
		s.justClicked = ptr(pos)
	}

	s.dragInProgress = nil
	return outcome
}

// Move feeds a pointer position to the drag detector. It has no effect
// unless the button is down. Returns true if this move started a drag.
func (s *ButtonState) Move(pos geom.Position, threshold float64) bool {
	if !s.down {
		return false
	}

	if s.dragInProgress != nil {
		next := s.dragInProgress.Advance(pos)
		s.dragInProgress = &next
		return false
	}

	// Without a went-down position there is nothing to measure from.
	if s.wentDown == nil {
		return false
	}
	drag, ok := BeginDrag(*s.wentDown, pos, threshold)
	if !ok {
		return false
	}
	s.dragInProgress = &drag
	return true
}

// ResetTransient clears the one-shot fields. A drag in progress keeps its
// Begin and AccumulatedFrameDelta; only PreviousFrameDelta is zeroed.
func (s *ButtonState) ResetTransient() {
	s.justDown = nil
	s.justUp = nil
	s.justClicked = nil
	s.dragJustFinished = nil

	if s.dragInProgress != nil {
		next := s.dragInProgress.startFrame()
		s.dragInProgress = &next
	}
}

// IsDown returns true while the button is held.
func (s *ButtonState) IsDown() bool {
	return s.down
}

// JustDown returns the press position if the button went down this frame.
func (s *ButtonState) JustDown() (geom.Position, bool) {
	return get(s.justDown)
}

// JustUp returns the release position if the button went up this frame.
func (s *ButtonState) JustUp() (geom.Position, bool) {
	return get(s.justUp)
}

// JustClicked returns the click position if a click was registered this frame.
func (s *ButtonState) JustClicked() (geom.Position, bool) {
	return get(s.justClicked)
}

// WentDown returns the position of the most recent press, if any.
func (s *ButtonState) WentDown() (geom.Position, bool) {
	return get(s.wentDown)
}

// WentUp returns the position of the most recent release, if any.
func (s *ButtonState) WentUp() (geom.Position, bool) {
	return get(s.wentUp)
}

// DragInProgress returns the current drag, if any.
func (s *ButtonState) DragInProgress() (DragState, bool) {
	return get(s.dragInProgress)
}

// DragJustFinished returns the drag finalized this frame, if any.
func (s *ButtonState) DragJustFinished() (DragState, bool) {
	return get(s.dragJustFinished)
}

func ptr[T any](v T) *T {
	return &v
}

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
