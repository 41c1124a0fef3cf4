package session

import "time"

// Config holds tracker configuration. Zero values fall back to defaults;
// negative durations are rejected by New.
type Config struct {
	// HeartbeatInterval is the period of heartbeat events while a
	// session is active. It also serves as the resume threshold after a
	// pause (default: 30s).
	HeartbeatInterval time.Duration `env:"SESSION_HEARTBEAT_INTERVAL" envDefault:"30s" yaml:"heartbeat_interval"`

	// InactivityTimeout is how long a session may go without an event
	// before it ends automatically (default: 2m).
	InactivityTimeout time.Duration `env:"SESSION_INACTIVITY_TIMEOUT" envDefault:"2m" yaml:"inactivity_timeout"`

	// Debug enables transition logging on the tracker's logger.
	Debug bool `env:"SESSION_DEBUG" envDefault:"false" yaml:"debug"`
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: 30 * time.Second,
		InactivityTimeout: 2 * time.Minute,
		Debug:             false,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.HeartbeatInterval < 0 || c.InactivityTimeout < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// withDefaults fills zero durations with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = def.HeartbeatInterval
	}
	if c.InactivityTimeout == 0 {
		c.InactivityTimeout = def.InactivityTimeout
	}
	return c
}
