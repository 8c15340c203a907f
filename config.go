package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings. Flags override env, env overrides the file.
type Config struct {
	Dataset    string `yaml:"dataset"`
	Undirected bool   `yaml:"undirected"`
	MaxDepth   int    `yaml:"max_depth"`
	LogLevel   string `yaml:"log_level"`
	JSONLogs   bool   `yaml:"json_logs"`
	CacheSize  int    `yaml:"cache_size"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		MaxDepth: 2,
		LogLevel: "info",
	}
}

// LoadConfig reads path (optional) on top of the defaults and applies the
// SPARSEGRAPH_* environment variables
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("SPARSEGRAPH_DATASET"); v != "" {
		cfg.Dataset = v
	}
	if v := os.Getenv("SPARSEGRAPH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SPARSEGRAPH_UNDIRECTED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("SPARSEGRAPH_UNDIRECTED: %w", err)
		}
		cfg.Undirected = b
	}
	return cfg, nil
}
