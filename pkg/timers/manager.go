package timers

import (
	"sync"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/clock"
)

// Manager owns the two session timers: a repeating heartbeat timer and a
// single-shot inactivity timer. Arming an already armed timer cancels and
// replaces it; canceling an unarmed timer is a no-op. Generation counters
// guarantee that a fire from a replaced or canceled timer never reaches
// its callback.
type Manager struct {
	clk clock.Clock

	mu sync.Mutex

	heartbeat         clock.Timer
	heartbeatGen      uint64
	heartbeatInterval time.Duration

	inactivity        clock.Timer
	inactivityGen     uint64
	inactivityTimeout time.Duration
	inactivityFn      func()
	inactivityArmed   bool
}

// NewManager creates a Manager scheduling on clk.
func NewManager(clk clock.Clock) *Manager {
	if clk == nil {
		clk = clock.New()
	}
	return &Manager{clk: clk}
}

// ArmHeartbeat starts the repeating heartbeat timer with the given
// period, replacing any previous heartbeat timer. fn runs once per
// period until CancelHeartbeat or a replacing ArmHeartbeat call.
func (m *Manager) ArmHeartbeat(period time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.heartbeatGen++
	if m.heartbeat != nil {
		m.heartbeat.Stop()
	}
	m.heartbeatInterval = period
	m.scheduleHeartbeat(m.heartbeatGen, fn)
}

// scheduleHeartbeat must be called with m.mu held.
func (m *Manager) scheduleHeartbeat(gen uint64, fn func()) {
	m.heartbeat = m.clk.AfterFunc(m.heartbeatInterval, func() {
		// Re-arm before invoking fn so the period is anchored to the
		// fire time, then invoke without holding the lock.
		m.mu.Lock()
		live := gen == m.heartbeatGen
		if live {
			m.scheduleHeartbeat(gen, fn)
		}
		m.mu.Unlock()
		if live {
			fn()
		}
	})
}

// CancelHeartbeat stops the heartbeat timer. No-op if unarmed.
func (m *Manager) CancelHeartbeat() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeatGen++
	if m.heartbeat != nil {
		m.heartbeat.Stop()
		m.heartbeat = nil
	}
}

// ArmInactivity starts the single-shot inactivity timer, replacing any
// previous one. fn runs once when the timeout elapses without a
// ResetInactivity call.
func (m *Manager) ArmInactivity(timeout time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inactivityGen++
	if m.inactivity != nil {
		m.inactivity.Stop()
	}
	m.inactivityTimeout = timeout
	m.inactivityFn = fn
	m.inactivityArmed = true
	m.scheduleInactivity(m.inactivityGen)
}

// scheduleInactivity must be called with m.mu held.
func (m *Manager) scheduleInactivity(gen uint64) {
	fn := m.inactivityFn
	m.inactivity = m.clk.AfterFunc(m.inactivityTimeout, func() {
		m.mu.Lock()
		live := gen == m.inactivityGen && m.inactivityArmed
		if live {
			m.inactivityArmed = false
		}
		m.mu.Unlock()
		if live {
			fn()
		}
	})
}

// ResetInactivity restarts the inactivity countdown from now using the
// timeout and callback of the last ArmInactivity call. No-op when the
// timer is not armed.
func (m *Manager) ResetInactivity() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inactivityArmed {
		return
	}
	m.inactivityGen++
	if m.inactivity != nil {
		m.inactivity.Stop()
	}
	m.scheduleInactivity(m.inactivityGen)
}

// CancelInactivity stops the inactivity timer. No-op if unarmed.
func (m *Manager) CancelInactivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inactivityGen++
	m.inactivityArmed = false
	if m.inactivity != nil {
		m.inactivity.Stop()
		m.inactivity = nil
	}
}

// CancelAll stops both timers.
func (m *Manager) CancelAll() {
	m.CancelHeartbeat()
	m.CancelInactivity()
}

// HeartbeatArmed reports whether the heartbeat timer is running.
func (m *Manager) HeartbeatArmed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heartbeat != nil
}

// InactivityArmed reports whether the inactivity timer is running.
func (m *Manager) InactivityArmed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inactivityArmed
}
