package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrInvalidWorkers is returned when workers is below 1
	ErrInvalidWorkers = errors.New("workers must be at least 1")
	// ErrInvalidTopN is returned when top is negative
	ErrInvalidTopN = errors.New("top must not be negative")
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Analysis settings
	Workers  int    `mapstructure:"workers"`
	Top      int    `mapstructure:"top"`
	Strategy string `mapstructure:"strategy"`
	Merge    string `mapstructure:"merge"`

	Bench  BenchConfig  `mapstructure:"bench"`
	Source SourceConfig `mapstructure:"source"`
}

// BenchConfig holds bench command defaults
type BenchConfig struct {
	Runs   int  `mapstructure:"runs"`
	Warmup bool `mapstructure:"warmup"`
}

// SourceConfig controls how input lines are read
type SourceConfig struct {
	JSONField string   `mapstructure:"json_field"`
	Pattern   string   `mapstructure:"pattern"`
	Exclude   []string `mapstructure:"exclude"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:   "ndjson",
		Quiet:    false,
		Verbose:  false,
		Workers:  4,
		Top:      5,
		Strategy: "contiguous",
		Merge:    "locked",
		Bench: BenchConfig{
			Runs:   5,
			Warmup: true,
		},
	}
}

// Validate rejects values no command can run with
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopN, c.Top)
	}
	switch c.Strategy {
	case "contiguous", "striped":
	default:
		return fmt.Errorf("unknown strategy %q (want contiguous or striped)", c.Strategy)
	}
	switch c.Merge {
	case "locked", "collector":
	default:
		return fmt.Errorf("unknown merge mode %q (want locked or collector)", c.Merge)
	}
	switch c.Format {
	case "ndjson", "text":
	default:
		return fmt.Errorf("unknown format %q (want ndjson or text)", c.Format)
	}
	if c.Bench.Runs < 1 {
		return fmt.Errorf("bench.runs must be at least 1: got %d", c.Bench.Runs)
	}
	return nil
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logpar.yaml or ./.logpar.yml
// 2. ~/.logpar.yaml or ~/.logpar.yml
// 3. $XDG_CONFIG_HOME/logpar/config.yaml (or ~/.config/logpar/config.yaml)
// 4. /etc/logpar/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logpar.yaml", ".logpar.yml", "logpar.yaml", "logpar.yml"}

	var searchPaths []string
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}
	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	// Dedicated directories hold a plain config.yaml
	var configDirs []string
	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, filepath.Join(configDir, "logpar"))
	}
	configDirs = append(configDirs, "/etc/logpar")
	for _, dir := range configDirs {
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOGPAR_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGPAR_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGPAR_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGPAR_WORKERS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("LOGPAR_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("LOGPAR_TOP"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("LOGPAR_TOP: %w", err)
		}
		cfg.Top = n
	}
	if v := os.Getenv("LOGPAR_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv("LOGPAR_MERGE"); v != "" {
		cfg.Merge = v
	}
	return nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
