package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the file-backed defaults for the converter. Flags override
// any value set here.
type Config struct {
	Columns    int     `yaml:"columns"`
	Charset    string  `yaml:"charset"`
	Color      bool    `yaml:"color"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Boost      float64 `yaml:"boost"`
	Sharpen    bool    `yaml:"sharpen"`
	Sort       bool    `yaml:"sort"`
	Scale      int     `yaml:"scale"`
	Workers    int     `yaml:"workers"`
	LogFile    string  `yaml:"log_file"`
}

// defaultConfig returns the built-in defaults used when no config file is
// present.
func defaultConfig() Config {
	return Config{
		Boost:   1.0,
		Scale:   1,
		Workers: 4,
	}
}

// loadConfig reads a YAML config file. A missing file at the default
// location is not an error; an explicitly requested file must exist.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
