package session

import (
	"errors"
	"time"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes durations from human-readable strings ("30s",
// "2m") instead of raw nanosecond integers. Absent fields stay zero and
// take defaults in New.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		HeartbeatInterval string `yaml:"heartbeat_interval"`
		InactivityTimeout string `yaml:"inactivity_timeout"`
		Debug             bool   `yaml:"debug"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	var cfg Config
	cfg.Debug = raw.Debug
	if raw.HeartbeatInterval != "" {
		d, err := time.ParseDuration(raw.HeartbeatInterval)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		cfg.HeartbeatInterval = d
	}
	if raw.InactivityTimeout != "" {
		d, err := time.ParseDuration(raw.InactivityTimeout)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		cfg.InactivityTimeout = d
	}

	*c = cfg
	return nil
}
