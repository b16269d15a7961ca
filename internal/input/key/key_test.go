package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key1, "1"},
		{Key0, "0"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyEscape, "Escape"},
		{KeyF1, "F1"},
		{KeyF24, "F24"},
		{KeySpace, "Space"},
		{KeyKPEnter, "KPEnter"},
		{KeyRightSuper, "RightSuper"},
		{KeyUnknown, "Unknown"},
		{Key(200), "Key(200)"},
		{Key(300), "Key(300)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryNamedKeyHasName(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == "" {
			t.Errorf("key %d has no name", k)
		}
	}
	if keyCount > Capacity {
		t.Errorf("keyCount = %d exceeds Capacity %d", keyCount, Capacity)
	}
}

func TestKeyClasses(t *testing.T) {
	tests := []struct {
		key                      Key
		letter, digit, fn, modif bool
	}{
		{KeyA, true, false, false, false},
		{KeyZ, true, false, false, false},
		{Key1, false, true, false, false},
		{Key0, false, true, false, false},
		{KeyF12, false, false, true, false},
		{KeyLeftShift, false, false, false, true},
		{KeyEscape, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsLetter(); got != tt.letter {
				t.Errorf("IsLetter() = %v, want %v", got, tt.letter)
			}
			if got := tt.key.IsDigit(); got != tt.digit {
				t.Errorf("IsDigit() = %v, want %v", got, tt.digit)
			}
			if got := tt.key.IsFunctionKey(); got != tt.fn {
				t.Errorf("IsFunctionKey() = %v, want %v", got, tt.fn)
			}
			if got := tt.key.IsModifier(); got != tt.modif {
				t.Errorf("IsModifier() = %v, want %v", got, tt.modif)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		key    Key
		index  int
		wantOK bool
	}{
		{Key1, 0, true},
		{KeyEscape, int(KeyEscape), true},
		{Key(Capacity - 1), Capacity - 1, true},
		{Key(Capacity), 0, false},
		{Key(300), 0, false},
		{KeyUnknown, 0, false},
	}

	for _, tt := range tests {
		i, ok := Index(tt.key)
		if ok != tt.wantOK || i != tt.index {
			t.Errorf("Index(%d) = (%d, %v), want (%d, %v)", tt.key, i, ok, tt.index, tt.wantOK)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"a", KeyA},
		{"A", KeyA},
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"F5", KeyF5},
		{"f5", KeyF5},
		{"return", KeyEnter},
		{"1", Key1},
		{" ", KeySpace},
		{"  Tab  ", KeyTab},
		{";", KeySemicolon},
		{"ctrl", KeyLeftCtrl},
		{"RightShift", KeyRightShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptyName", err)
	}
	k, err := Parse("hyper")
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("Parse(\"hyper\") error = %v, want ErrUnknownName", err)
	}
	if k != KeyUnknown {
		t.Errorf("Parse(\"hyper\") = %v, want KeyUnknown", k)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		got, err := Parse(k.String())
		if err != nil {
			t.Errorf("Parse(%q) error: %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("Parse(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'Q', KeyQ},
		{'0', Key0},
		{'1', Key1},
		{'9', Key9},
		{' ', KeySpace},
		{'\t', KeyTab},
		{'/', KeySlash},
		{'é', KeyUnknown},
		{'!', KeyUnknown},
	}

	for _, tt := range tests {
		if got := FromRune(tt.r); got != tt.want {
			t.Errorf("FromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestStatePressRelease(t *testing.T) {
	var s State

	s.Press()
	if !s.Down || !s.JustDown || s.JustUp {
		t.Fatalf("after Press: %+v", s)
	}

	s.ResetTransient()
	if !s.Down || s.JustDown {
		t.Fatalf("after ResetTransient: %+v", s)
	}

	// Auto-repeat does not raise JustDown again.
	s.Press()
	if s.JustDown {
		t.Error("repeated Press set JustDown")
	}

	s.Release()
	if s.Down || !s.JustUp {
		t.Fatalf("after Release: %+v", s)
	}

	s.ResetTransient()
	s.Release()
	if s.JustUp {
		t.Error("Release of an up key set JustUp")
	}
}
