package session

import "time"

// State is the tracker's session state.
type State string

const (
	// StateInactive means no session is running.
	StateInactive State = "inactive"
	// StateActive means a session is running and timers are armed.
	StateActive State = "active"
	// StatePaused means a session is suspended (hidden host or lost
	// network) and may resume in place.
	StatePaused State = "paused"
)

// StartKind distinguishes the two ways a session begins.
type StartKind string

const (
	// StartInit marks a session begun by the deferred initialization
	// tick right after construction.
	StartInit StartKind = "init"
	// StartActive marks a session begun by an activity or resume signal.
	StartActive StartKind = "active"
)

// StartEvent is delivered to OnStart handlers when a session begins or
// resumes. Field names and units are part of the wire compatibility
// contract.
type StartEvent struct {
	Kind      StartKind `json:"kind"`
	Timestamp int64     `json:"timestamp"` // Unix milliseconds
}

// EndEvent is delivered to OnEnd handlers when a session ends or pauses.
// Duration is the time since the last externally observable event,
// TotalDuration the time since the session started; both in
// milliseconds, computed from the same instant with independent anchors.
type EndEvent struct {
	Duration      int64 `json:"duration"`
	TotalDuration int64 `json:"total_duration"`
	Timestamp     int64 `json:"timestamp"` // Unix milliseconds
}

// HeartbeatEvent is delivered to OnHeartbeat handlers periodically while
// a session is active. Duration is the time since the previous
// heartbeat, TotalDuration the time since the session started.
type HeartbeatEvent struct {
	Duration      int64 `json:"duration"`
	TotalDuration int64 `json:"total_duration"`
	Timestamp     int64 `json:"timestamp"` // Unix milliseconds
}

func unixMilli(t time.Time) int64 { return t.UnixMilli() }
