// Package toolconfig loads psopacketctl's own configuration: just
// enough to stand up a logger the way the server binary does, without
// dragging in the server's database/network/rates sections.
package toolconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is psopacketctl's on-disk configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the configuration psopacketctl runs with when no
// config file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads and decodes a TOML config file. A missing path is not an
// error — callers get Default() instead, matching dump/cipher's
// use as an ad-hoc CLI tool rather than a long-running service.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("toolconfig: decode %s: %w", path, err)
	}
	return cfg, nil
}
