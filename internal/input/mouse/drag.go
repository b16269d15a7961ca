package mouse

import "github.com/dshills/framestate/internal/geom"

// DefaultDragThreshold is the distance in logical units the pointer must
// travel from the went-down position before motion counts as a drag.
const DefaultDragThreshold = 2.0

// DragState describes a drag in progress or one that just finished.
type DragState struct {
	// Begin is where the button went down.
	Begin geom.Position

	// End is the most recent pointer position of the drag.
	End geom.Position

	// PreviousFrameDelta is the displacement contributed by the most
	// recent motion update. It is zeroed at the frame boundary.
	PreviousFrameDelta geom.Position

	// AccumulatedFrameDelta is the total displacement since Begin.
	AccumulatedFrameDelta geom.Position
}

// BeginDrag starts a drag if current is farther than threshold from
// wentDown. Distances at or below the threshold are jitter.
func BeginDrag(wentDown, current geom.Position, threshold float64) (DragState, bool) {
	if wentDown.Distance(current) <= threshold {
		return DragState{}, false
	}
	delta := current.Sub(wentDown)
	return DragState{
		Begin:                 wentDown,
		End:                   current,
		PreviousFrameDelta:    delta,
		AccumulatedFrameDelta: delta,
	}, true
}

// Advance returns the drag updated with a new pointer position. The new
// delta is the motion not yet accounted for by AccumulatedFrameDelta.
func (d DragState) Advance(current geom.Position) DragState {
	delta := current.Sub(d.Begin.Add(d.AccumulatedFrameDelta))
	return DragState{
		Begin:                 d.Begin,
		End:                   current,
		PreviousFrameDelta:    delta,
		AccumulatedFrameDelta: d.AccumulatedFrameDelta.Add(delta),
	}
}

// startFrame returns the drag as seen at the start of a new frame,
// before any motion: only PreviousFrameDelta is reset.
func (d DragState) startFrame() DragState {
	d.PreviousFrameDelta = geom.Position{}
	return d
}
