package mouse

import "strconv"

// Button identifies a pointer button.
type Button uint32

// Capacity is the number of buttons with storage in the state store.
const Capacity = 7

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the middle button (wheel click).
	ButtonMiddle

	// otherOffset is the slot of ButtonOther(0).
	otherOffset
)

// ButtonOther returns the identifier of an extra device button.
// Extra buttons are numbered from zero by the platform.
func ButtonOther(n uint16) Button {
	return Button(uint32(n) + uint32(otherOffset))
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other(" + strconv.FormatUint(uint64(b-otherOffset), 10) + ")"
	}
}

// ParseButton resolves "left", "right", "middle" or "other(n)".
func ParseButton(s string) (Button, bool) {
	switch s {
	case "left":
		return ButtonLeft, true
	case "right":
		return ButtonRight, true
	case "middle":
		return ButtonMiddle, true
	}
	if len(s) > len("other()") && s[:6] == "other(" && s[len(s)-1] == ')' {
		n, err := strconv.ParseUint(s[6:len(s)-1], 10, 16)
		if err != nil {
			return 0, false
		}
		return ButtonOther(uint16(n)), true
	}
	return 0, false
}

// Index translates a button to its slot in the state store.
// Buttons at or beyond Capacity have no slot.
func Index(b Button) (int, bool) {
	if b >= Capacity {
		return 0, false
	}
	return int(b), true
}
