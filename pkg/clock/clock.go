package clock

import "time"

// Clock abstracts wall-clock access and timer scheduling so that
// time-driven logic can be tested deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration

	// AfterFunc schedules fn to run after d and returns a Timer that can
	// be stopped or reset.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled function call.
type Timer interface {
	// Stop cancels the pending call. It reports whether the call was
	// still pending. Stopping an already fired or stopped timer is a no-op.
	Stop() bool

	// Reset reschedules the call to fire after d from now. It reports
	// whether the call was still pending.
	Reset(d time.Duration) bool
}

// New returns a Clock backed by the system clock and real timers.
func New() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() bool { return s.t.Stop() }

func (s systemTimer) Reset(d time.Duration) bool { return s.t.Reset(d) }
