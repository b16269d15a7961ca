package app

import (
	"sort"
	"sync"

	"github.com/dshills/framestate/internal/input"
)

// HookPriority defines the execution order for frame hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHighest runs before all other hooks.
	HookPriorityHighest HookPriority = -1000
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
	// HookPriorityLowest runs after all other hooks.
	HookPriorityLowest HookPriority = 1000
)

// maxHookFailures is the number of consecutive failures after which a
// hook is disabled.
const maxHookFailures = 3

// FrameHook observes the input state once per frame, after the frame's
// events are ingested and before the one-shot signals are cleared.
type FrameHook interface {
	OnFrame(n uint64, state *input.State) error
}

// FrameHookFunc adapts a function to the FrameHook interface.
type FrameHookFunc func(n uint64, state *input.State) error

// OnFrame calls f.
func (f FrameHookFunc) OnFrame(n uint64, state *input.State) error {
	return f(n, state)
}

// HookID uniquely identifies a registered hook.
type HookID uint64

// HookRegistration holds metadata about a registered hook.
type HookRegistration struct {
	ID       HookID
	Name     string
	Priority HookPriority
	Hook     FrameHook

	failures int
	disabled bool
}

// Disabled reports whether the hook was switched off after failing
// repeatedly.
func (r HookRegistration) Disabled() bool {
	return r.disabled
}

// HookError reports a frame hook failure.
type HookError struct {
	Name     string
	Frame    uint64
	Disabled bool
	Err      error
}

func (e *HookError) Error() string {
	return "hook " + e.Name + ": " + e.Err.Error()
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// HookManager runs frame hooks in priority order. Hooks with equal
// priority run in registration order.
type HookManager struct {
	mu     sync.Mutex
	hooks  []*HookRegistration
	nextID HookID
	sorted bool
}

// NewHookManager creates a new hook manager.
func NewHookManager() *HookManager {
	return &HookManager{sorted: true}
}

// Register adds a named hook with the given priority.
func (m *HookManager) Register(name string, priority HookPriority, hook FrameHook) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.hooks = append(m.hooks, &HookRegistration{
		ID:       m.nextID,
		Name:     name,
		Priority: priority,
		Hook:     hook,
	})
	m.sorted = false
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, reg := range m.hooks {
		if reg.ID == id {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hooks)
}

// List returns a copy of the hook registrations in execution order.
func (m *HookManager) List() []HookRegistration {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureSorted()
	result := make([]HookRegistration, len(m.hooks))
	for i, reg := range m.hooks {
		result[i] = *reg
	}
	return result
}

// Run calls every enabled hook in priority order. A failing hook does not
// stop the chain; its error is returned in the result. After
// maxHookFailures consecutive failures a hook is disabled.
func (m *HookManager) Run(n uint64, state *input.State) []error {
	m.mu.Lock()
	m.ensureSorted()
	hooks := make([]*HookRegistration, 0, len(m.hooks))
	for _, reg := range m.hooks {
		if !reg.disabled {
			hooks = append(hooks, reg)
		}
	}
	m.mu.Unlock()

	var errs []error
	for _, reg := range hooks {
		err := reg.Hook.OnFrame(n, state)

		m.mu.Lock()
		if err == nil {
			reg.failures = 0
			m.mu.Unlock()
			continue
		}
		reg.failures++
		if reg.failures >= maxHookFailures {
			reg.disabled = true
		}
		disabled := reg.disabled
		m.mu.Unlock()

		errs = append(errs, &HookError{Name: reg.Name, Frame: n, Disabled: disabled, Err: err})
	}
	return errs
}

// ensureSorted sorts hooks by priority if needed. Callers hold mu.
func (m *HookManager) ensureSorted() {
	if m.sorted {
		return
	}
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority < m.hooks[j].Priority
	})
	m.sorted = true
}
