// Package clock provides a small clock abstraction for time-driven code.
//
// The Clock interface covers the three operations the session tracking
// packages need: reading the current time, measuring elapsed time and
// scheduling a function call. New returns the system implementation;
// NewMock returns a manually driven clock for tests.
//
// # Deterministic testing
//
// Mock fires due timer callbacks synchronously while Add or Set advances
// the time, in deadline order. A callback that schedules another timer
// within the advanced window gets that timer fired in the same Add call,
// so repeating timers behave as they would in real time:
//
//	clk := clock.NewMock()
//	clk.AfterFunc(time.Second, func() { fmt.Println("tick") })
//	clk.Add(5 * time.Second) // prints "tick" before returning
package clock
