package cli

import (
	"github.com/benbjohnson/clock"

	"github.com/vburojevic/logpar/internal/config"
	"github.com/vburojevic/logpar/internal/engine"
	"github.com/vburojevic/logpar/internal/source"
)

// EngineFlags select how the parallel engine schedules work
type EngineFlags struct {
	Workers  int    `short:"w" default:"${config_workers}" help:"Number of parallel workers (>= 1)"`
	Strategy string `default:"${config_strategy}" help:"Partition strategy: contiguous or striped"`
	Merge    string `default:"${config_merge}" help:"How worker results are merged: locked or collector"`
}

func (f EngineFlags) apply(cfg *config.Config) {
	cfg.Workers = f.Workers
	if f.Strategy != "" {
		cfg.Strategy = f.Strategy
	}
	if f.Merge != "" {
		cfg.Merge = f.Merge
	}
}

// SourceFlags control which lines are read from the input files
type SourceFlags struct {
	JSONField  string   `name:"json-field" default:"${config_json_field}" help:"Treat input as NDJSON and analyze the string at this path (e.g. message or log.raw)"`
	Pattern    string   `short:"p" default:"${config_pattern}" help:"Only keep lines matching this regex"`
	Exclude    []string `short:"x" help:"Drop lines matching this regex (repeatable)"`
	Keyword    []string `short:"k" help:"Only keep lines containing one of these markers: INFO, ERROR, WARNING, DEBUG"`
	SkipPrefix []string `help:"Drop lines starting with this prefix (repeatable)"`
}

func (f SourceFlags) apply(cfg *config.Config) {
	if f.JSONField != "" {
		cfg.Source.JSONField = f.JSONField
	}
	if f.Pattern != "" {
		cfg.Source.Pattern = f.Pattern
	}
	if len(f.Exclude) > 0 {
		cfg.Source.Exclude = f.Exclude
	}
}

// effectiveConfig returns a copy of the loaded config that commands may
// overwrite with flag values.
func effectiveConfig(globals *Globals) *config.Config {
	if globals.Config == nil {
		return config.Default()
	}
	cfg := *globals.Config
	cfg.Source.Exclude = append([]string(nil), globals.Config.Source.Exclude...)
	return &cfg
}

func engineOptions(cfg *config.Config) engine.Options {
	return engine.Options{
		Workers:  cfg.Workers,
		Strategy: engine.Strategy(cfg.Strategy),
		Merge:    engine.MergeMode(cfg.Merge),
	}
}

// newReader builds the line reader for cfg and the command's filter flags
func newReader(globals *Globals, cfg *config.Config, f SourceFlags) (*source.Reader, error) {
	lineFilter, err := buildFilter(cfg.Source.Pattern, cfg.Source.Exclude, f.Keyword, f.SkipPrefix)
	if err != nil {
		return nil, err
	}
	return source.NewReader(source.Options{
		JSONField: cfg.Source.JSONField,
		Filter:    lineFilter,
	}, globals.logger()), nil
}

func (g *Globals) clock() clock.Clock {
	if g.Clock == nil {
		return clock.New()
	}
	return g.Clock
}
