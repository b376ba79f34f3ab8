package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/logpar/internal/cli"
	"github.com/vburojevic/logpar/internal/config"
)

const quickStart = `logpar - serial vs parallel log analysis

START HERE:
  logpar generate                       Write data/log_small.txt ... data/log_xxlarge.txt
  logpar bench                          Time serial against parallel on those files

Analyze your own logs:
  logpar analyze app.log -w 8           Keyword counts, top IPs, top error messages
  logpar analyze app.log --format text  Human-readable report

Other useful commands:
  logpar config show                    Effective configuration
  logpar schema                         JSON Schema of every output type
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags override them
	ctx := kong.Parse(&c,
		kong.Name("logpar"),
		kong.Description("Analyze log files serially or across parallel workers\n\nSTART HERE: logpar generate && logpar bench"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		cli.KongVars(cfg),
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	defer func() { _ = globals.Logger.Sync() }()

	if err := ctx.Run(globals); err != nil {
		_ = globals.Logger.Sync()
		os.Exit(cli.ExitCode(err))
	}
}
