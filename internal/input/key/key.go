package key

import "strconv"

// Key identifies a keyboard key.
type Key uint16

// Capacity is the number of keys with storage in the state store.
const Capacity = 255

// KeyUnknown is reported for keys the platform could not identify.
// It lies outside Capacity and is never stored.
const KeyUnknown Key = 0xFFFF

const (
	// Number row
	Key1 Key = iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyEscape

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyPrintScreen
	KeyScrollLock
	KeyPause

	// Navigation
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	KeyBackspace
	KeyEnter
	KeySpace
	KeyTab
	KeyCapsLock
	KeyNumLock

	// Keypad
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPEnter

	// Punctuation
	KeyApostrophe
	KeyBackslash
	KeyComma
	KeyEqual
	KeyGrave
	KeyLeftBracket
	KeyMinus
	KeyPeriod
	KeyRightBracket
	KeySemicolon
	KeySlash

	// Modifiers
	KeyLeftAlt
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftSuper
	KeyRightAlt
	KeyRightCtrl
	KeyRightShift
	KeyRightSuper

	// keyCount is the number of named keys.
	keyCount
)

var keyNames = [keyCount]string{
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	KeyEscape: "Escape",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",

	KeyInsert:   "Insert",
	KeyHome:     "Home",
	KeyDelete:   "Delete",
	KeyEnd:      "End",
	KeyPageDown: "PageDown",
	KeyPageUp:   "PageUp",
	KeyLeft:     "Left",
	KeyUp:       "Up",
	KeyRight:    "Right",
	KeyDown:     "Down",

	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyCapsLock:  "CapsLock",
	KeyNumLock:   "NumLock",

	KeyKP0: "KP0", KeyKP1: "KP1", KeyKP2: "KP2", KeyKP3: "KP3", KeyKP4: "KP4",
	KeyKP5: "KP5", KeyKP6: "KP6", KeyKP7: "KP7", KeyKP8: "KP8", KeyKP9: "KP9",
	KeyKPAdd:      "KPAdd",
	KeyKPSubtract: "KPSubtract",
	KeyKPMultiply: "KPMultiply",
	KeyKPDivide:   "KPDivide",
	KeyKPDecimal:  "KPDecimal",
	KeyKPEnter:    "KPEnter",

	KeyApostrophe:   "Apostrophe",
	KeyBackslash:    "Backslash",
	KeyComma:        "Comma",
	KeyEqual:        "Equal",
	KeyGrave:        "Grave",
	KeyLeftBracket:  "LeftBracket",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeyRightBracket: "RightBracket",
	KeySemicolon:    "Semicolon",
	KeySlash:        "Slash",

	KeyLeftAlt:    "LeftAlt",
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftSuper:  "LeftSuper",
	KeyRightAlt:   "RightAlt",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightSuper: "RightSuper",
}

// String returns the canonical name of the key.
// Keys without a name are rendered as "Key(n)".
func (k Key) String() string {
	if k == KeyUnknown {
		return "Unknown"
	}
	if k < keyCount {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// IsLetter returns true for KeyA through KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the number row keys.
func (k Key) IsDigit() bool {
	return k <= Key0
}

// IsFunctionKey returns true for F1 through F24.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF24
}

// IsModifier returns true for the Alt, Ctrl, Shift and Super keys.
func (k Key) IsModifier() bool {
	return k >= KeyLeftAlt && k <= KeyRightSuper
}

// Index translates a key to its slot in the state store.
// Keys at or beyond Capacity have no slot.
func Index(k Key) (int, bool) {
	i := int(k)
	if i >= Capacity {
		return 0, false
	}
	return i, true
}
