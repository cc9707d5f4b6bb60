package etl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default destination settings.
const (
	DefaultDBPath = "queuedata.db"
	DefaultTable  = "queuedata"
	DefaultEngine = "duckdb"
)

// Config holds all settings for one load run.
type Config struct {
	// JSONPath is the input JSON file (top-level dictionary). Required.
	JSONPath string `yaml:"json"`

	// DBPath is the destination database file, created if absent.
	DBPath string `yaml:"db"`

	// Table is the destination table name. An existing table of the same
	// name is replaced.
	Table string `yaml:"table"`

	// Engine selects the embedded database engine: "duckdb" or "sqlite".
	Engine string `yaml:"engine"`
}

// LoadConfig reads run settings from a YAML file. Only fields defined on
// Config are allowed; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays overrides onto c and returns the result. An override field
// applies when it was explicitly set (keyed by its flag name: "json", "db",
// "table", "engine") or when c has no value for it. This gives command-line
// flags precedence over a config file while letting the file fill the gaps.
func (c Config) Merge(overrides Config, explicit map[string]bool) Config {
	if explicit["json"] || c.JSONPath == "" {
		c.JSONPath = overrides.JSONPath
	}
	if explicit["db"] || c.DBPath == "" {
		c.DBPath = overrides.DBPath
	}
	if explicit["table"] || c.Table == "" {
		c.Table = overrides.Table
	}
	if explicit["engine"] || c.Engine == "" {
		c.Engine = overrides.Engine
	}
	return c
}

func (c *Config) applyDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.Table == "" {
		c.Table = DefaultTable
	}
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
}
