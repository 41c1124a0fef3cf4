// Package sessionkit tracks the lifecycle of a single logical user
// session inside a long-lived client process.
//
// The module reconciles asynchronously arriving host signals (user
// activity, visibility changes, network state, imminent teardown) into
// one coherent session state machine that emits timed start, heartbeat
// and end events to registered observers.
//
// The packages under pkg/ compose bottom-up:
//
//   - pkg/clock    – clock abstraction with a deterministic mock
//   - pkg/timers   – heartbeat and inactivity timer management
//   - pkg/callback – observer registries with panic isolation
//   - pkg/session  – the session state machine (the core)
//   - pkg/signal   – abstract host signal sources and tracker binding
//   - pkg/instance – process-wide single-instance management
//   - pkg/config   – env and YAML configuration loading
//   - pkg/logger   – slog factory for debug transition logging
//
// Typical wiring:
//
//	tracker, err := instance.Create(session.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	_ = tracker.OnEnd(func(ev session.EndEvent) { report(ev) })
//
//	src := signal.NewDispatcher() // fed by platform adapters
//	unbind, _ := signal.Bind(tracker, src)
//	defer unbind()
package sessionkit
