package session

import (
	"log/slog"

	"github.com/dmitrymomot/sessionkit/pkg/clock"
)

// ResumePolicy decides how a paused session comes back when the host
// becomes visible within the resume threshold.
type ResumePolicy int

const (
	// ResumeImmediate resumes the session in place as soon as the host
	// is visible again (desktop-style).
	ResumeImmediate ResumePolicy = iota
	// ResumeDeferred drops to inactive and waits for one more activity
	// signal before starting a fresh session (mobile-style).
	ResumeDeferred
)

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithClock sets a custom clock, typically a clock.Mock in tests.
func WithClock(clk clock.Clock) Option {
	return func(t *Tracker) {
		if clk != nil {
			t.clk = clk
		}
	}
}

// WithLogger sets the logger used for handler panic reports and, with
// Config.Debug enabled, transition logging.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithResumePolicy sets the resume behavior after a short pause.
func WithResumePolicy(p ResumePolicy) Option {
	return func(t *Tracker) {
		t.policy = p
	}
}

// WithInitiallyHidden marks the host as hidden at construction, which
// suppresses the deferred init start until visibility arrives.
func WithInitiallyHidden() Option {
	return func(t *Tracker) {
		t.hidden = true
	}
}
