// Package timers manages the two timers behind a tracked session: the
// repeating heartbeat timer and the single-shot inactivity timer.
//
// Both timers follow the same arming rules: arming while already armed
// cancels and replaces the previous timer (two timers for the same
// purpose never run at once) and canceling an unarmed timer is a no-op.
// ResetInactivity restarts the inactivity countdown without changing its
// timeout or callback, which is the hot path on user activity.
//
// Scheduling goes through clock.Clock, so tests drive the manager with a
// clock.Mock and observe fires deterministically.
package timers
