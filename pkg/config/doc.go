// Package config loads configuration structs from the environment or
// from YAML files.
//
// Load follows the twelve-factor path: it reads the optional .env file
// once per process, then parses environment variables into the target
// struct based on `env`/`envDefault` field tags. LoadFile parses a YAML
// file based on `yaml` tags, for hosts that ship a config file instead
// of environment variables. session.Config carries both tag sets, so
// either loader works:
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//	t, err := session.New(cfg)
package config
