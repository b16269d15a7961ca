package key

// State is the per-key slot of the state store.
type State struct {
	// Down is true while the key is held.
	Down bool

	// JustDown is true only in the frame the key went from up to down.
	JustDown bool

	// JustUp is true only in the frame the key went from down to up.
	JustUp bool
}

// Press records a press. Repeated presses of a held key (auto-repeat)
// do not raise JustDown again.
func (s *State) Press() {
	if !s.Down {
		s.JustDown = true
	}
	s.Down = true
}

// Release records a release. Releasing a key that is not down does not
// raise JustUp.
func (s *State) Release() {
	if s.Down {
		s.JustUp = true
	}
	s.Down = false
}

// ResetTransient clears the one-shot flags and keeps Down.
func (s *State) ResetTransient() {
	s.JustDown = false
	s.JustUp = false
}
