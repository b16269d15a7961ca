package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen     tcell.Screen
	translator *Translator
	events     chan input.Event
	style      tcell.Style

	mu      sync.Mutex
	started bool
	done    sync.WaitGroup
}

// NewTerminal creates a new terminal backend on the controlling terminal.
func NewTerminal(opts ...TranslatorOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, opts...), nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen, opts ...TranslatorOption) *Terminal {
	return &Terminal{
		screen:     screen,
		translator: NewTranslator(opts...),
		events:     make(chan input.Event, 256),
		style:      tcell.StyleDefault,
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Enable mouse support by default
	t.screen.EnableMouse()
	t.screen.HideCursor()

	t.started = true
	t.done.Add(1)
	go t.pollLoop()

	return nil
}

// pollLoop translates screen events until the screen is finalized.
func (t *Terminal) pollLoop() {
	defer t.done.Done()
	defer close(t.events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		for _, e := range t.translator.Translate(ev) {
			t.events <- e
		}
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	started := t.started
	t.started = false
	t.mu.Unlock()

	if !started {
		return
	}
	t.screen.Fini()

	// Unblock the poll loop if the consumer has stopped reading.
	go func() {
		for range t.events {
		}
	}()
	t.done.Wait()
}

func (t *Terminal) Size() geom.Size {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return geom.Size{Width: float64(w), Height: float64(h)}
}

func (t *Terminal) Events() <-chan input.Event {
	return t.events
}

func (t *Terminal) PostClose() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(closeInterrupt{})) // best-effort; event queue may be full
}

func (t *Terminal) Draw(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			t.screen.SetContent(x, y, r, nil, t.style)
			x++
		}
	}
	t.screen.Show()
}
