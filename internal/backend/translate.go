package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/key"
	"github.com/dshills/framestate/internal/input/mouse"
)

// closeInterrupt is the payload of the tcell interrupt posted by PostClose.
type closeInterrupt struct{}

// trackedButtons lists the tcell buttons reported as input buttons, in
// button order. Wheel bits are not buttons and are ignored.
var trackedButtons = [...]struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonOther(0)},
	{tcell.Button5, mouse.ButtonOther(1)},
	{tcell.Button6, mouse.ButtonOther(2)},
	{tcell.Button7, mouse.ButtonOther(3)},
	{tcell.Button8, mouse.ButtonOther(4)},
}

// Translator converts tcell events into input events. It remembers the
// pointer position and button mask between mouse events, so a single
// Translator must see every event of a stream, in order.
type Translator struct {
	releaseKeys bool

	buttons    tcell.ButtonMask
	pointer    geom.Position
	hasPointer bool
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithKeyRelease makes the translator emit a release right after each key
// press. Terminals report key presses only.
func WithKeyRelease(enabled bool) TranslatorOption {
	return func(t *Translator) {
		t.releaseKeys = enabled
	}
}

// NewTranslator creates a translator with synthesized key releases on.
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{releaseKeys: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate converts one tcell event into zero or more input events.
func (t *Translator) Translate(ev tcell.Event) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e)

	case *tcell.EventMouse:
		return t.translateMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return []input.Event{input.ResizeEvent{Size: geom.Size{Width: float64(w), Height: float64(h)}}}

	case *tcell.EventInterrupt:
		if _, ok := e.Data().(closeInterrupt); ok {
			return []input.Event{input.CloseRequest{}}
		}
		return nil

	default:
		return nil
	}
}

func (t *Translator) translateKey(e *tcell.EventKey) []input.Event {
	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return []input.Event{input.CloseRequest{}}
	}

	k := convertKey(e)
	events := []input.Event{input.KeyEvent{Key: k, State: input.Pressed}}
	if t.releaseKeys {
		events = append(events, input.KeyEvent{Key: k, State: input.Released})
	}
	return events
}

// translateMouse emits the pointer move first, then one transition per
// button whose state changed, so transitions see the current position.
func (t *Translator) translateMouse(e *tcell.EventMouse) []input.Event {
	var events []input.Event

	x, y := e.Position()
	pos := geom.Pos(float64(x), float64(y))
	if !t.hasPointer || pos != t.pointer {
		t.pointer = pos
		t.hasPointer = true
		events = append(events, input.MoveEvent{Position: pos})
	}

	buttons := e.Buttons()
	changed := buttons ^ t.buttons
	for _, tb := range trackedButtons {
		if changed&tb.mask == 0 {
			continue
		}
		st := input.Released
		if buttons&tb.mask != 0 {
			st = input.Pressed
		}
		events = append(events, input.ButtonEvent{Button: tb.button, State: st})
	}
	t.buttons = buttons

	return events
}

// convertKey maps a tcell key event to a key. Keys with no counterpart map
// to key.KeyUnknown.
func convertKey(e *tcell.EventKey) key.Key {
	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		return key.FromRune(e.Rune())
	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.KeyA + key.Key(k-tcell.KeyCtrlA)
	case k == tcell.KeyCtrlSpace:
		return key.KeySpace
	}

	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyPrint:
		return key.KeyPrintScreen
	case tcell.KeyPause:
		return key.KeyPause
	default:
		return key.KeyUnknown
	}
}
