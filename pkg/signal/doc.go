// Package signal defines the abstract boundary between the session core
// and the host environment's event sources.
//
// The core never attaches platform listeners itself. A Source delivers
// abstract signals (activity, visibility, network, teardown) and
// concrete adapters (visibility API, touch events, network API) live
// outside this module as swappable Source implementations. Dispatcher
// is the in-memory implementation used by adapters and tests.
//
// Bind wires a session.Tracker to a Source:
//
//	t := session.MustNew(session.DefaultConfig())
//	src := signal.NewDispatcher()
//	unbind, _ := signal.Bind(t, src)
//	defer unbind()
//
//	src.Activity()                // -> t.Activity()
//	src.VisibilityChanged(true)   // -> t.VisibilityChanged(true)
package signal
