package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptyName   = errors.New("empty key name")
	ErrUnknownName = errors.New("unknown key name")
)

// keyAliases maps common alternative spellings to keys.
var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"bs":        KeyBackspace,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"space":     KeySpace,
	" ":         KeySpace,
	"'":         KeyApostrophe,
	"\\":        KeyBackslash,
	",":         KeyComma,
	"=":         KeyEqual,
	"`":         KeyGrave,
	"[":         KeyLeftBracket,
	"-":         KeyMinus,
	".":         KeyPeriod,
	"]":         KeyRightBracket,
	";":         KeySemicolon,
	"/":         KeySlash,
	"alt":       KeyLeftAlt,
	"ctrl":      KeyLeftCtrl,
	"control":   KeyLeftCtrl,
	"shift":     KeyLeftShift,
	"super":     KeyLeftSuper,
	"meta":      KeyLeftSuper,
	"snapshot":  KeyPrintScreen,
	"scroll":    KeyScrollLock,
	"backquote": KeyGrave,
}

// nameIndex maps lower-cased canonical names to keys.
var nameIndex = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(0); k < keyCount; k++ {
		m[strings.ToLower(keyNames[k])] = k
	}
	return m
}()

// Parse resolves a key name into a Key.
//
// Canonical names ("A", "Escape", "F5", "KPEnter") and the aliases in
// keyAliases ("esc", "return", "ctrl", ";") are accepted in any case.
func Parse(name string) (Key, error) {
	if name == "" {
		return KeyUnknown, ErrEmptyName
	}
	if name != " " {
		name = strings.TrimSpace(name)
	}
	lower := strings.ToLower(name)

	if k, ok := nameIndex[lower]; ok {
		return k, nil
	}
	if k, ok := keyAliases[lower]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// FromRune maps a printable character to the key that produces it,
// ignoring case. Characters without a dedicated key yield KeyUnknown.
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r == '0':
		return Key0
	case r >= '1' && r <= '9':
		return Key1 + Key(r-'1')
	}

	switch r {
	case ' ':
		return KeySpace
	case '\t':
		return KeyTab
	}

	if k, ok := keyAliases[string(r)]; ok {
		return k
	}
	return KeyUnknown
}
