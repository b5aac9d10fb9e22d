// Package config loads the server configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds settings for the zakon server command.
type Config struct {
	Debug   bool          `toml:"debug"`
	Storage StorageConfig `toml:"storage"`
	Server  ServerConfig  `toml:"server"`
}

// StorageConfig points at the corpus database.
type StorageConfig struct {
	DatabasePath string `toml:"database_path"`
}

// ServerConfig holds the optional HTTP listener settings; when Addr is
// empty the server speaks MCP over stdio.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{DatabasePath: "zakon.db"},
	}
}

// Load reads and decodes a TOML config file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "zakon.db"
	}
	return cfg, nil
}
