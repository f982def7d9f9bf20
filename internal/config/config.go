// Package config loads the optional bookstore config file.
//
// The file is YAML with two keys:
//
//	database: /path/to/bookstore.db
//	format: text
//
// Precedence for the database path is flag > BOOKSTORE_DB env var > config
// file > the default "bookstore.db" in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDatabase is used when no flag, env var or config file names one.
const DefaultDatabase = "bookstore.db"

// EnvDatabase overrides the config file's database path when set.
const EnvDatabase = "BOOKSTORE_DB"

// Config holds settings from the config file.
type Config struct {
	Database string `yaml:"database"`
	Format   string `yaml:"format"`
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero Config; a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveDatabase applies the precedence chain to pick the database path.
// flagValue is the --db flag, empty when unset.
func (c Config) ResolveDatabase(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		return env
	}
	if c.Database != "" {
		return c.Database
	}
	return DefaultDatabase
}
