// Package mouse provides pointer button identifiers, per-button state and
// drag detection.
//
// # Buttons
//
// Buttons are dense identifiers: Left, Right and Middle occupy the first
// three slots and extra device buttons follow at an offset:
//
//	mouse.ButtonOther(0) // fourth slot
//
// Only buttons below Capacity have storage. Anything beyond is silently
// ignored by the state store.
//
// # Click vs Drag
//
// ButtonState records where a button went down. While the button is held,
// each pointer move is fed to the drag detector. A drag starts once the
// pointer is farther than the drag threshold from the went-down position;
// smaller motion is jitter. On release exactly one of two things happens:
//
//   - a drag was in progress: it is finalized and exposed as just finished
//   - no drag was in progress: the release is registered as a click
//
// # Thread Safety
//
// ButtonState is not synchronized. It is owned by the frame loop that
// drives the state store.
package mouse
