package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/callback"
	"github.com/dmitrymomot/sessionkit/pkg/clock"
	"github.com/dmitrymomot/sessionkit/pkg/timers"
)

// Tracker is the session state machine. It consumes host signals
// (activity, visibility, network, teardown), maintains the current
// session state and bookkeeping timestamps, drives the heartbeat and
// inactivity timers and delivers start/heartbeat/end events to
// registered handlers.
//
// All transitions are serialized by an internal mutex; handlers run
// synchronously on the transitioning goroutine and must not call back
// into the Tracker.
type Tracker struct {
	cfg    Config
	clk    clock.Clock
	log    *slog.Logger
	policy ResumePolicy

	start     *callback.Registry[StartEvent]
	end       *callback.Registry[EndEvent]
	heartbeat *callback.Registry[HeartbeatEvent]

	timers *timers.Manager

	mu        sync.Mutex
	state     State
	hidden    bool
	destroyed bool
	initTimer clock.Timer

	sessionStart  time.Time
	lastActivity  time.Time
	lastHeartbeat time.Time
	lastEvent     time.Time
	pauseStart    time.Time
}

// New creates a Tracker with the given configuration and options. Zero
// config durations take defaults (30s heartbeat, 2m inactivity);
// negative ones return ErrInvalidConfig.
//
// The first session does not begin inside New: a zero-delay init task is
// scheduled instead, so every handler registered in the same synchronous
// turn observes the initial StartEvent (kind "init"). A signal arriving
// before the init task runs wins; the init task then yields to the
// already running session.
func New(cfg Config, opts ...Option) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Tracker{
		cfg:    cfg.withDefaults(),
		clk:    clock.New(),
		log:    slog.Default(),
		state:  StateInactive,
		policy: ResumeImmediate,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.start = callback.New[StartEvent]("session.start", t.log)
	t.end = callback.New[EndEvent]("session.end", t.log)
	t.heartbeat = callback.New[HeartbeatEvent]("session.heartbeat", t.log)
	t.timers = timers.NewManager(t.clk)

	t.initTimer = t.clk.AfterFunc(0, t.initialize)

	return t, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(cfg Config, opts ...Option) *Tracker {
	t, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// OnStart registers a handler for session start events. It returns
// callback.ErrInvalidHandler for a nil handler and ErrDestroyed after
// Destroy.
func (t *Tracker) OnStart(h func(StartEvent)) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	return t.start.Register(h)
}

// OnEnd registers a handler for session end events. End handlers are
// awaited by pause and destroy transitions before those proceed.
func (t *Tracker) OnEnd(h func(EndEvent)) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	return t.end.Register(h)
}

// OnHeartbeat registers a handler for heartbeat events.
func (t *Tracker) OnHeartbeat(h func(HeartbeatEvent)) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	return t.heartbeat.Register(h)
}

func (t *Tracker) checkLive() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return ErrDestroyed
	}
	return nil
}

// State returns the current session state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Activity records a user activity signal. From inactive (and a visible
// host) it starts a new session; while active it refreshes the activity
// and event anchors and re-arms the inactivity timer; while paused it is
// ignored until the session resumes.
func (t *Tracker) Activity() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.activityLocked(t.clk.Now())
}

func (t *Tracker) activityLocked(now time.Time) {
	switch t.state {
	case StateInactive:
		if !t.hidden {
			t.beginSessionLocked(now, StartActive)
		}
	case StateActive:
		t.lastActivity = now
		t.lastEvent = now
		t.timers.ResetInactivity()
	case StatePaused:
		// Paused sessions ignore activity until resumed.
	}
}

// VisibilityChanged records a host visibility change. Going hidden
// pauses an active session; becoming visible resumes a paused one
// according to the resume policy and the pause duration.
func (t *Tracker) VisibilityChanged(hidden bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}

	t.hidden = hidden
	now := t.clk.Now()
	if hidden {
		if t.state == StateActive {
			t.pauseLocked(now)
		}
		return
	}
	if t.state == StatePaused {
		t.resumeLocked(now)
	}
}

// NetworkChanged records a network state change. Going offline while
// active pauses the session, exactly like the host going hidden; coming
// back online is treated as an activity signal.
func (t *Tracker) NetworkChanged(online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}

	now := t.clk.Now()
	if online {
		t.activityLocked(now)
		return
	}
	if t.state == StateActive {
		t.pauseLocked(now)
	}
}

// TeardownImminent records that the host is about to discard the
// process. An active session pauses so its end event fires while the
// handlers can still run.
func (t *Tracker) TeardownImminent() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	if t.state == StateActive {
		t.pauseLocked(t.clk.Now())
	}
}

// Destroy tears the tracker down: the init task and both timers are
// canceled and, if a session is active, one final end transition runs
// synchronously with its EndEvent. Destroy returns only after all end
// handlers have completed; no handler fires afterwards. It is idempotent
// and safe to call multiple times.
func (t *Tracker) Destroy() {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	t.destroyed = true
	if t.initTimer != nil {
		t.initTimer.Stop()
	}

	var done <-chan struct{}
	if t.state == StateActive {
		done = t.endLocked(t.clk.Now())
	} else {
		t.state = StateInactive
		t.timers.CancelAll()
	}
	t.mu.Unlock()

	if done != nil {
		<-done
	}
	t.debugLog("tracker destroyed")
}

// initialize runs on the deferred init tick. It starts the first session
// with kind "init" unless a signal beat it to it or the host is hidden.
func (t *Tracker) initialize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed || t.state != StateInactive || t.hidden {
		return
	}
	t.beginSessionLocked(t.clk.Now(), StartInit)
}

// beginSessionLocked starts a new session. No-op when already active, so
// racing start signals cannot double-start.
func (t *Tracker) beginSessionLocked(now time.Time, kind StartKind) {
	if t.state == StateActive {
		return
	}
	t.state = StateActive
	t.sessionStart = now
	t.lastActivity = now
	t.lastHeartbeat = now
	t.lastEvent = now

	t.timers.ArmHeartbeat(t.cfg.HeartbeatInterval, t.onHeartbeatTimer)
	t.timers.ArmInactivity(t.cfg.InactivityTimeout, t.onInactivityTimer)

	t.debugLog("session started", slog.String("kind", string(kind)))
	t.start.Fire(StartEvent{Kind: kind, Timestamp: unixMilli(now)})
}

// pauseLocked suspends the active session: its end event fires and is
// awaited, but sessionStart survives for a potential in-place resume.
func (t *Tracker) pauseLocked(now time.Time) {
	ev := EndEvent{
		Duration:      now.Sub(t.lastEvent).Milliseconds(),
		TotalDuration: now.Sub(t.sessionStart).Milliseconds(),
		Timestamp:     unixMilli(now),
	}
	t.timers.CancelAll()
	t.pauseStart = now
	t.state = StatePaused

	t.debugLog("session paused",
		slog.Int64("duration", ev.Duration),
		slog.Int64("total_duration", ev.TotalDuration),
	)
	<-t.end.FireWait(ev)
	t.lastEvent = now
}

// resumeLocked decides how a paused session comes back. A pause strictly
// longer than the heartbeat interval always starts a fresh session; a
// shorter one resumes in place or, under ResumeDeferred, drops to
// inactive until the next activity signal.
func (t *Tracker) resumeLocked(now time.Time) {
	pause := now.Sub(t.pauseStart)
	if pause > t.cfg.HeartbeatInterval {
		t.state = StateInactive
		t.beginSessionLocked(now, StartActive)
		return
	}

	if t.policy == ResumeDeferred {
		t.state = StateInactive
		t.debugLog("resume deferred until next activity",
			slog.Duration("pause", pause))
		return
	}

	t.state = StateActive
	t.lastActivity = now
	t.timers.ArmHeartbeat(t.cfg.HeartbeatInterval, t.onHeartbeatTimer)
	t.timers.ArmInactivity(t.cfg.InactivityTimeout, t.onInactivityTimer)

	t.debugLog("session resumed in place", slog.Duration("pause", pause))
	t.start.Fire(StartEvent{Kind: StartActive, Timestamp: unixMilli(now)})
	t.lastEvent = now
}

// endLocked finishes the active session and returns the end handlers'
// completion channel.
func (t *Tracker) endLocked(now time.Time) <-chan struct{} {
	ev := EndEvent{
		Duration:      now.Sub(t.lastEvent).Milliseconds(),
		TotalDuration: now.Sub(t.sessionStart).Milliseconds(),
		Timestamp:     unixMilli(now),
	}
	t.timers.CancelAll()
	t.state = StateInactive

	t.debugLog("session ended",
		slog.Int64("duration", ev.Duration),
		slog.Int64("total_duration", ev.TotalDuration),
	)
	done := t.end.FireWait(ev)
	t.lastEvent = now
	return done
}

// onHeartbeatTimer fires once per heartbeat interval while active. The
// event is emitted only when activity occurred within the last interval;
// an emitted heartbeat becomes the new event anchor and re-arms the
// inactivity countdown, so an idle session ends at
// lastEvent + InactivityTimeout.
func (t *Tracker) onHeartbeatTimer() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed || t.state != StateActive {
		return
	}

	now := t.clk.Now()
	if now.Sub(t.lastActivity) > t.cfg.HeartbeatInterval {
		t.debugLog("heartbeat skipped, no recent activity")
		return
	}

	ev := HeartbeatEvent{
		Duration:      now.Sub(t.lastHeartbeat).Milliseconds(),
		TotalDuration: now.Sub(t.sessionStart).Milliseconds(),
		Timestamp:     unixMilli(now),
	}
	t.heartbeat.Fire(ev)
	t.lastHeartbeat = now
	t.lastEvent = now
	t.timers.ResetInactivity()
}

// onInactivityTimer ends the session after the inactivity timeout
// elapses with no event.
func (t *Tracker) onInactivityTimer() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed || t.state != StateActive {
		return
	}
	t.endLocked(t.clk.Now())
}

func (t *Tracker) debugLog(msg string, attrs ...any) {
	if t.cfg.Debug {
		t.log.Debug(msg, attrs...)
	}
}
