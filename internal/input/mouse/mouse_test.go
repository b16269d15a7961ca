package mouse

import (
	"math"
	"testing"

	"github.com/dshills/framestate/internal/geom"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonMiddle, "middle"},
		{ButtonOther(0), "other(0)"},
		{ButtonOther(3), "other(3)"},
		{ButtonOther(65535), "other(65535)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
			parsed, ok := ParseButton(tt.expected)
			if !ok || parsed != tt.button {
				t.Errorf("ParseButton(%q) = (%v, %v), want (%v, true)", tt.expected, parsed, ok, tt.button)
			}
		})
	}
}

func TestParseButtonInvalid(t *testing.T) {
	for _, s := range []string{"", "up", "other()", "other(x)", "other(70000)", "other(1"} {
		if b, ok := ParseButton(s); ok {
			t.Errorf("ParseButton(%q) = %v, want failure", s, b)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		button Button
		index  int
		wantOK bool
	}{
		{ButtonLeft, 0, true},
		{ButtonRight, 1, true},
		{ButtonMiddle, 2, true},
		{ButtonOther(0), 3, true},
		{ButtonOther(3), 6, true},
		{ButtonOther(4), 0, false},
		{ButtonOther(65535), 0, false},
	}

	for _, tt := range tests {
		i, ok := Index(tt.button)
		if ok != tt.wantOK || i != tt.index {
			t.Errorf("Index(%v) = (%d, %v), want (%d, %v)", tt.button, i, ok, tt.index, tt.wantOK)
		}
	}
}

func TestBeginDragThreshold(t *testing.T) {
	origin := geom.Pos(0, 0)

	tests := []struct {
		name    string
		current geom.Position
		want    bool
	}{
		{"no motion", geom.Pos(0, 0), false},
		{"jitter", geom.Pos(0.5, 0.5), false},
		{"exactly threshold", geom.Pos(2, 0), false},
		{"just beyond threshold", geom.Pos(2.01, 0), true},
		{"diagonal", geom.Pos(10, 10), true},
		{"negative direction", geom.Pos(-3, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := BeginDrag(origin, tt.current, DefaultDragThreshold)
			if ok != tt.want {
				t.Errorf("BeginDrag(%v) started = %v, want %v", tt.current, ok, tt.want)
			}
		})
	}
}

func TestBeginDragFields(t *testing.T) {
	d, ok := BeginDrag(geom.Pos(5, 5), geom.Pos(20, 20), DefaultDragThreshold)
	if !ok {
		t.Fatal("BeginDrag did not start")
	}
	if d.Begin != geom.Pos(5, 5) {
		t.Errorf("Begin = %v, want (5, 5)", d.Begin)
	}
	if d.End != geom.Pos(20, 20) {
		t.Errorf("End = %v, want (20, 20)", d.End)
	}
	if d.PreviousFrameDelta != geom.Pos(15, 15) || d.AccumulatedFrameDelta != geom.Pos(15, 15) {
		t.Errorf("deltas = %v / %v, want (15, 15) for both", d.PreviousFrameDelta, d.AccumulatedFrameDelta)
	}
}

func TestDragAdvance(t *testing.T) {
	d, _ := BeginDrag(geom.Pos(0, 0), geom.Pos(3, 0), DefaultDragThreshold)

	d = d.Advance(geom.Pos(5, 1))
	if d.PreviousFrameDelta != geom.Pos(2, 1) {
		t.Errorf("PreviousFrameDelta = %v, want (2, 1)", d.PreviousFrameDelta)
	}
	if d.AccumulatedFrameDelta != geom.Pos(5, 1) {
		t.Errorf("AccumulatedFrameDelta = %v, want (5, 1)", d.AccumulatedFrameDelta)
	}
	if d.End != geom.Pos(5, 1) {
		t.Errorf("End = %v, want (5, 1)", d.End)
	}

	// Moving back toward the start gives a negative delta.
	d = d.Advance(geom.Pos(1, 1))
	if d.PreviousFrameDelta != geom.Pos(-4, 0) {
		t.Errorf("PreviousFrameDelta = %v, want (-4, 0)", d.PreviousFrameDelta)
	}
	if d.Begin.Add(d.AccumulatedFrameDelta) != d.End {
		t.Errorf("Begin + accumulated = %v, want End %v", d.Begin.Add(d.AccumulatedFrameDelta), d.End)
	}
}

func TestDragAdvanceAfterFrameReset(t *testing.T) {
	d, _ := BeginDrag(geom.Pos(0, 0), geom.Pos(10, 0), DefaultDragThreshold)
	d = d.startFrame()
	if d.PreviousFrameDelta != (geom.Position{}) {
		t.Fatalf("startFrame kept PreviousFrameDelta %v", d.PreviousFrameDelta)
	}
	if d.AccumulatedFrameDelta != geom.Pos(10, 0) {
		t.Fatalf("startFrame changed AccumulatedFrameDelta to %v", d.AccumulatedFrameDelta)
	}

	d = d.Advance(geom.Pos(12.5, -1))
	if d.PreviousFrameDelta != geom.Pos(2.5, -1) {
		t.Errorf("PreviousFrameDelta = %v, want (2.5, -1)", d.PreviousFrameDelta)
	}
	want := geom.Pos(12.5, -1)
	got := d.AccumulatedFrameDelta
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("AccumulatedFrameDelta = %v, want %v", got, want)
	}
}
