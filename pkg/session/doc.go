// Package session tracks the lifecycle of a single logical user session
// inside a long-lived client process. It reconciles asynchronously
// arriving host signals (user activity, visibility changes, network
// state, imminent teardown) into one coherent session state and a small
// set of timed events delivered to registered handlers.
//
// # Session model
//
// A Tracker is always in exactly one of three states: inactive, active
// or paused. Activity from an inactive, visible host starts a session;
// hiding the host or losing the network pauses it; the inactivity
// timeout or Destroy ends it. A session is a logical interval bounded by
// inactive, not a separately allocated object: the Tracker keeps a
// single set of bookkeeping timestamps for its whole lifetime.
//
// While active, a heartbeat event fires once per HeartbeatInterval as
// long as activity occurred within the preceding interval. Every emitted
// event moves the interval anchor, and the inactivity countdown runs
// from that anchor, so an idle session ends InactivityTimeout after its
// last event rather than after its last raw activity.
//
// After a pause, the heartbeat interval doubles as the resume threshold:
// a pause strictly longer than it starts a fresh session, a shorter one
// resumes in place (or, with ResumeDeferred, waits for one more activity
// signal, the conservative mobile-style policy).
//
// # Events
//
// StartEvent, EndEvent and HeartbeatEvent are plain values with
// wire-stable JSON field names (kind, duration, total_duration,
// timestamp) and millisecond units. Duration is the time since the last
// externally observable event; TotalDuration the time since the session
// started. Handlers fire synchronously in registration order with panic
// isolation; they receive the payload only and must not call back into
// the Tracker.
//
// The first StartEvent (kind "init") fires on a zero-delay init task
// rather than inside New, so handlers registered in the same synchronous
// turn never miss it.
//
// # Usage
//
//	t, err := session.New(session.Config{
//	    HeartbeatInterval: 30 * time.Second,
//	    InactivityTimeout: 2 * time.Minute,
//	})
//	if err != nil {
//	    // handle error
//	}
//	defer t.Destroy()
//
//	_ = t.OnStart(func(ev session.StartEvent) { /* ... */ })
//	_ = t.OnEnd(func(ev session.EndEvent) { /* ... */ })
//	_ = t.OnHeartbeat(func(ev session.HeartbeatEvent) { /* ... */ })
//
//	// Route host signals into the tracker, directly or via pkg/signal.
//	t.Activity()
//	t.VisibilityChanged(true)
//
// Destroy cancels all timers, forces a final end transition if a session
// is active and returns only after every end handler has completed; no
// handler fires afterwards.
//
// # Error Handling
//
// Common error values returned by the package:
//
//   - ErrInvalidConfig        – negative duration in Config
//   - ErrDestroyed            – registration after Destroy
//   - callback.ErrInvalidHandler – nil handler passed to OnStart/OnEnd/OnHeartbeat
package session
