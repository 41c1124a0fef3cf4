// Package callback provides a generic observer registry with a uniform
// exception-isolation policy.
//
// A Registry[T] keeps an ordered, append-only list of handlers for a
// single event kind. Register rejects nil handlers with
// ErrInvalidHandler. Fire invokes handlers synchronously in registration
// order; a panic inside one handler is recovered and logged so sibling
// handlers still run and the emitting component's state is untouched.
//
// FireWait behaves like Fire and additionally returns a channel closed
// once every handler has returned. Event emitters whose callers need a
// completion guarantee (session end during pause or teardown) use it to
// let the caller await consumer cleanup:
//
//	reg := callback.New[EndEvent]("session.end", logger)
//	_ = reg.Register(func(ev EndEvent) { flush(ev) })
//	<-reg.FireWait(ev) // flush has run, panics included
package callback
