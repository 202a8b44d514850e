// Package config loads the server configuration.
package config

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

const DefaultAddr = ":6379"

// Config holds the server settings. Every field is optional in the file.
type Config struct {
	// Addr is the address to listen on. ex :6379
	Addr string `yaml:"addr"`
	// ListKind is the topology of lists created by LPUSH and friends.
	ListKind lists.Kind `yaml:"list-kind"`
	// ReadLimit caps the bytes per second read from each connection,
	// 0 means unlimited.
	ReadLimit int64 `yaml:"read-limit"`
	Debug     bool  `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:     DefaultAddr,
		ListKind: lists.Double,
	}
}

// Parse reads a YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, xerrors.Errorf("cannot parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("cannot read configuration: %w", err)
	}
	return Parse(data)
}

// Validate checks the values are usable.
func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return xerrors.Errorf("invalid configuration: empty addr")
	}
	if cfg.ReadLimit < 0 {
		return xerrors.Errorf("invalid configuration: negative read-limit %d", cfg.ReadLimit)
	}
	if _, err := cfg.ListKind.MarshalText(); err != nil {
		return xerrors.Errorf("invalid configuration: %w", err)
	}
	return nil
}
