package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the PrepKit CLI.
type Config struct {
	StoragePath string         // path to the sqlite history database
	Defaults    DefaultsConfig // optional defaults applied when analyze flags are omitted
}

// DefaultsConfig pre-fills analyze inputs that are tedious to retype.
type DefaultsConfig struct {
	Company string `yaml:"company"`
	Role    string `yaml:"role"`
}

const defaultStoragePath = "prepkit.db"

// rawConfig is used for YAML unmarshaling (snake_case fields).
type rawConfig struct {
	StoragePath string         `yaml:"storage_path"`
	Defaults    DefaultsConfig `yaml:"defaults"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{StoragePath: defaultStoragePath}
}

// Load reads and parses the YAML config file at path. A missing file is not
// an error: the defaults are returned, since every setting is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	storagePath := raw.StoragePath
	if storagePath == "" {
		storagePath = defaultStoragePath
	}

	return &Config{
		StoragePath: storagePath,
		Defaults:    raw.Defaults,
	}, nil
}
