// Package input turns a stream of platform input notifications into a
// stable, queryable per-frame snapshot.
//
// # Architecture
//
// The input system consists of several cooperating pieces:
//
//   - Event Ingestion: Dispatch and the Handle methods map one event to
//     state mutations
//   - State Store: fixed-capacity key (package key) and button (package
//     mouse) slots holding persistent "is down" flags and one-shot
//     "just" signals
//   - Drag Detector: per-button click vs drag disambiguation (package mouse)
//   - Frame Lifecycle: EndFrame clears one-shot state at the frame boundary
//
// # Frame Protocol
//
// For every frame N the owner ingests all of N's events, runs its queries,
// then calls EndFrame exactly once before ingesting frame N+1's events:
//
//	state := input.New(input.WithTerminator(control))
//	for running {
//	    state.DispatchAll(pending)
//	    update(state) // IsKeyJustDown, MouseDragInProgress, ...
//	    state.EndFrame()
//	}
//
// Skipping EndFrame does not corrupt the store but repeats one-shot
// signals into the next frame. Querying before any event simply sees the
// initial empty state.
//
// # Identifiers
//
// Keys and buttons outside the store's capacity are valid inputs that are
// silently ignored: they never mutate state and every query about them
// reports false or absent.
//
// # Thread Safety
//
// State is owned by a single goroutine and is not synchronized.
package input
