package clock

import (
	"sync"
	"time"
)

// Mock is a Clock whose time only moves when Add or Set is called.
// Timers scheduled through AfterFunc fire synchronously on the goroutine
// that advances the clock, in deadline order, which makes timer-driven
// logic fully deterministic in tests.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

// NewMock returns a Mock positioned at the Unix epoch.
func NewMock() *Mock {
	return &Mock{now: time.Unix(0, 0).UTC()}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &mockTimer{
		mock:     m,
		deadline: m.now.Add(d),
		fn:       fn,
		active:   true,
	}
	m.timers = append(m.timers, t)
	return t
}

// Add advances the clock by d, firing every due timer in deadline order.
// Functions scheduled by a firing timer are themselves fired if they fall
// within the advanced window.
func (m *Mock) Add(d time.Duration) {
	m.mu.Lock()
	m.advance(m.now.Add(d))
	m.mu.Unlock()
}

// Set moves the clock to t, firing due timers along the way. Moving the
// clock backwards only changes the current time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	if t.After(m.now) {
		m.advance(t)
	} else {
		m.now = t
	}
	m.mu.Unlock()
}

// advance must be called with m.mu held. The lock is released around each
// timer callback so callbacks can schedule or stop timers.
func (m *Mock) advance(target time.Time) {
	for {
		t := m.nextTimer(target)
		if t == nil {
			break
		}
		if t.deadline.After(m.now) {
			m.now = t.deadline
		}
		t.active = false
		fn := t.fn
		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}
	if target.After(m.now) {
		m.now = target
	}
}

// nextTimer returns the earliest active timer due at or before target.
func (m *Mock) nextTimer(target time.Time) *mockTimer {
	var next *mockTimer
	for _, t := range m.timers {
		if !t.active || t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) {
			next = t
		}
	}
	return next
}

type mockTimer struct {
	mock     *Mock
	deadline time.Time
	fn       func()
	active   bool
}

func (t *mockTimer) Stop() bool {
	t.mock.mu.Lock()
	defer t.mock.mu.Unlock()
	was := t.active
	t.active = false
	return was
}

func (t *mockTimer) Reset(d time.Duration) bool {
	t.mock.mu.Lock()
	defer t.mock.mu.Unlock()
	was := t.active
	t.deadline = t.mock.now.Add(d)
	t.active = true
	return was
}
