package instance

import (
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Manager enforces at most one live Tracker per slot. Creating a new
// tracker tears the previous one down first; the slot mutex is held
// across the teardown, so no signal can reach a half-replaced instance
// and the old tracker's end handlers complete before the new tracker's
// init task can fire.
type Manager struct {
	mu      sync.Mutex
	current *session.Tracker
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Create replaces the current tracker with a new one. Any previous
// tracker is destroyed first and its end handlers are awaited before the
// new tracker is constructed.
func (m *Manager) Create(cfg session.Config, opts ...session.Option) (*session.Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Destroy()
		m.current = nil
	}

	t, err := session.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	m.current = t
	return t, nil
}

// CreateAsync replaces the current tracker without waiting for the
// previous one's teardown, which proceeds on a background goroutine.
// Callers choosing this path accept that the old tracker's end events
// may interleave with the new tracker's start events.
func (m *Manager) CreateAsync(cfg session.Config, opts ...session.Option) (*session.Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old := m.current; old != nil {
		m.current = nil
		go old.Destroy()
	}

	t, err := session.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	m.current = t
	return t, nil
}

// Current returns the live tracker, or nil when none exists.
func (m *Manager) Current() *session.Tracker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Destroy tears down the current tracker, if any, and empties the slot.
// It returns after the tracker's end handlers have completed and is safe
// to call with an empty slot.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Destroy()
		m.current = nil
	}
}

// defaultManager backs the package-level convenience API. All mutation
// of the process-wide instance slot funnels through it.
var defaultManager = NewManager()

// Create replaces the process-wide tracker, awaiting the previous one's
// teardown.
func Create(cfg session.Config, opts ...session.Option) (*session.Tracker, error) {
	return defaultManager.Create(cfg, opts...)
}

// CreateAsync replaces the process-wide tracker with background teardown
// of the previous one.
func CreateAsync(cfg session.Config, opts ...session.Option) (*session.Tracker, error) {
	return defaultManager.CreateAsync(cfg, opts...)
}

// Current returns the process-wide tracker, or nil.
func Current() *session.Tracker {
	return defaultManager.Current()
}

// Destroy tears down the process-wide tracker.
func Destroy() {
	defaultManager.Destroy()
}
