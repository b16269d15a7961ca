package input

// EndFrame clears every one-shot ("just") signal while keeping held keys,
// held buttons and drags in progress. Call it exactly once per frame,
// after the frame's events have been ingested and queried. Calling it
// again without new events is harmless.
func (s *State) EndFrame() {
	s.resetTransientState()
}

// resetTransientState is the single place the one-shot contract is kept.
func (s *State) resetTransientState() {
	for i := range s.keys {
		s.keys[i].ResetTransient()
	}
	for i := range s.buttons {
		s.buttons[i].ResetTransient()
	}
}
