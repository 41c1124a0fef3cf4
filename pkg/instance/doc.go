// Package instance enforces a single live session.Tracker per process.
//
// A Manager owns one optional tracker slot. Create destroys the previous
// tracker before constructing the replacement, awaiting its end handlers
// and firing its final EndEvent if a session was active, so observers
// never see the two instances' events interleave. CreateAsync skips the
// wait and runs the old teardown in the background for callers that
// accept interleaving.
//
// The package-level functions operate on a default manager, which is the
// process-wide "current instance" slot:
//
//	t, err := instance.Create(session.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	_ = t.OnEnd(func(ev session.EndEvent) { /* ... */ })
//
//	// Later: replace it. The first tracker's end handlers have
//	// completed before the new tracker can emit anything.
//	t2, _ := instance.Create(session.DefaultConfig())
//	_ = t2
//	instance.Destroy()
package instance
