package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/vburojevic/logpar/internal/config"
	"github.com/vburojevic/logpar/internal/output"
)

// CLI is the root command structure for logpar
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"ndjson,text" help:"Output format"`
	Quiet   bool   `short:"q" help:"Only log warnings and errors to stderr"`
	Verbose bool   `short:"v" help:"Log debug detail (per-worker merges, file loads) to stderr"`
	NoColor bool   `help:"Disable styling in text output"`

	// Commands
	Analyze  AnalyzeCmd  `cmd:"" help:"Count keywords, IPs and error messages in log files"`
	Bench    BenchCmd    `cmd:"" help:"Time serial against parallel analysis and report speedup"`
	Generate GenerateCmd `cmd:"" help:"Write synthetic log files for benchmarking"`
	Config   ConfigCmd   `cmd:"" help:"Show or manage configuration"`
	Schema   SchemaCmd   `cmd:"" help:"Output JSON Schema for logpar output types"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock
}

// KongVars exposes config values as flag defaults, so explicit flags win
// over the config file and the config file wins over built-in defaults.
func KongVars(cfg *config.Config) kong.Vars {
	if cfg == nil {
		cfg = config.Default()
	}
	return kong.Vars{
		"config_format":     cfg.Format,
		"config_workers":    strconv.Itoa(cfg.Workers),
		"config_top":        strconv.Itoa(cfg.Top),
		"config_strategy":   cfg.Strategy,
		"config_merge":      cfg.Merge,
		"config_runs":       strconv.Itoa(cfg.Bench.Runs),
		"config_json_field": cfg.Source.JSONField,
		"config_pattern":    cfg.Source.Pattern,
	}
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	g.Logger = NewLogger(g.Stderr, g.Verbose, g.Quiet)
	return g
}

// Debug logs a debug message when verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Sugar().Debugf(format, args...)
	}
}

// logger never returns nil so commands can log unconditionally
func (g *Globals) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// plainText reports whether text output should skip styling
func (g *Globals) plainText() bool {
	if g.NoColor {
		return true
	}
	f, ok := g.Stdout.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// emitter returns an output emitter for the global format
func (g *Globals) emitter() output.Emitter {
	return output.NewEmitter(g.Stdout, output.Format(g.Format), g.plainText())
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteMetadata(Version, Commit, BuildDate)
	}
	_, err := io.WriteString(globals.Stdout, "logpar version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)
