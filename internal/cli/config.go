package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/logpar/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		output := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"workers":  cfg.Workers,
			"top":      cfg.Top,
			"strategy": cfg.Strategy,
			"merge":    cfg.Merge,
			"bench": map[string]interface{}{
				"runs":   cfg.Bench.Runs,
				"warmup": cfg.Bench.Warmup,
			},
			"source": map[string]interface{}{
				"json_field": cfg.Source.JSONField,
				"pattern":    cfg.Source.Pattern,
				"exclude":    cfg.Source.Exclude,
			},
		}
		if path := config.ConfigFile(); path != "" {
			output["config_file"] = path
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:   %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:    %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose:  %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  workers:  %d\n", cfg.Workers)
	fmt.Fprintf(globals.Stdout, "  top:      %d\n", cfg.Top)
	fmt.Fprintf(globals.Stdout, "  strategy: %s\n", cfg.Strategy)
	fmt.Fprintf(globals.Stdout, "  merge:    %s\n", cfg.Merge)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Bench:")
	fmt.Fprintf(globals.Stdout, "  runs:   %d\n", cfg.Bench.Runs)
	fmt.Fprintf(globals.Stdout, "  warmup: %v\n", cfg.Bench.Warmup)

	if cfg.Source.JSONField != "" || cfg.Source.Pattern != "" || len(cfg.Source.Exclude) > 0 {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Source:")
		if cfg.Source.JSONField != "" {
			fmt.Fprintf(globals.Stdout, "  json_field: %s\n", cfg.Source.JSONField)
		}
		if cfg.Source.Pattern != "" {
			fmt.Fprintf(globals.Stdout, "  pattern: %s\n", cfg.Source.Pattern)
		}
		if len(cfg.Source.Exclude) > 0 {
			fmt.Fprintf(globals.Stdout, "  exclude: %v\n", cfg.Source.Exclude)
		}
	}

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		output := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.logpar.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.logpar.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/logpar/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# logpar configuration file
# Place this file at ./.logpar.yaml, ~/.logpar.yaml or ~/.config/logpar/config.yaml

# Output format: "ndjson" (default) or "text"
format: ndjson

# Only log warnings and errors to stderr
quiet: false

# Log debug detail to stderr
verbose: false

# Parallel workers (>= 1)
workers: 4

# Entries per ranked section (0 hides them)
top: 5

# Partition strategy: contiguous or striped
strategy: contiguous

# Merge mode: locked (mutex + atomics) or collector (channel)
merge: locked

bench:
  # Timed runs averaged per mode
  runs: 5

  # Run each mode once untimed before timing
  warmup: true

source:
  # Treat input as NDJSON and analyze the string at this path
  # json_field: message

  # Only keep lines matching this regex
  # pattern: "ERROR|WARNING"

  # Drop lines matching these regexes
  # exclude:
  #   - "^#"
  #   - healthcheck
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
