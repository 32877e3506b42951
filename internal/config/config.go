// Package config loads the hamming server configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Redis configures the optional Redis fingerprint store.
// An empty Addr selects the in-memory store.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
}

// Server represents the configuration for the HTTP service.
type Server struct {
	Addr  string `yaml:"addr" json:"addr"`
	Redis Redis  `yaml:"redis" json:"redis"`
}

// Default returns the configuration applied when no file and no flags
// are given.
func Default() Server {
	return Server{Addr: ":8080"}
}

// Load reads a configuration file (YAML or JSON, by extension).
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, nil
}
