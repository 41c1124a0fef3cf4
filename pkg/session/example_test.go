package session_test

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/clock"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func Example() {
	clk := clock.NewMock()
	tracker := session.MustNew(session.Config{
		HeartbeatInterval: time.Second,
		InactivityTimeout: 5 * time.Second,
	}, session.WithClock(clk))
	defer tracker.Destroy()

	_ = tracker.OnStart(func(ev session.StartEvent) {
		fmt.Printf("start kind=%s t=%d\n", ev.Kind, ev.Timestamp)
	})
	_ = tracker.OnHeartbeat(func(ev session.HeartbeatEvent) {
		fmt.Printf("heartbeat duration=%d total=%d\n", ev.Duration, ev.TotalDuration)
	})
	_ = tracker.OnEnd(func(ev session.EndEvent) {
		fmt.Printf("end duration=%d total=%d\n", ev.Duration, ev.TotalDuration)
	})

	tracker.Activity()       // user input at t=0
	clk.Add(6 * time.Second) // one heartbeat, then the idle end

	// Output:
	// start kind=active t=0
	// heartbeat duration=1000 total=1000
	// end duration=5000 total=6000
}

func Example_debugLogging() {
	log := logger.New(logger.WithDebug("sessionkit"))
	tracker := session.MustNew(
		session.Config{Debug: true},
		session.WithLogger(log),
	)
	defer tracker.Destroy()

	tracker.Activity()
}
