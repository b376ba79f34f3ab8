package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vburojevic/logpar/internal/bench"
	"github.com/vburojevic/logpar/internal/domain"
	"github.com/vburojevic/logpar/internal/engine"
	"github.com/vburojevic/logpar/internal/generate"
	"github.com/vburojevic/logpar/internal/output"
)

// BenchCmd compares serial and parallel analysis timings
type BenchCmd struct {
	Files    []string `arg:"" optional:"" help:"Log files to benchmark (default: the preset files in --dir)"`
	Dir      string   `default:"data" help:"Directory holding preset files written by 'logpar generate'"`
	Runs     int      `default:"${config_runs}" help:"Timed runs averaged per mode"`
	NoWarmup bool     `help:"Skip the untimed warmup run"`
	CSV      bool     `help:"Write results as CSV rows instead of the global format"`
	Output   string   `short:"o" help:"Also write CSV results to this file"`

	EngineFlags `embed:""`
	SourceFlags `embed:""`
}

// Run executes the bench command
func (c *BenchCmd) Run(globals *Globals) error {
	cfg := effectiveConfig(globals)
	c.EngineFlags.apply(cfg)
	c.SourceFlags.apply(cfg)
	if c.Runs != 0 {
		cfg.Bench.Runs = c.Runs
	}
	if c.NoWarmup {
		cfg.Bench.Warmup = false
	}

	if err := cfg.Validate(); err != nil {
		return withCause(outputErrorCommon(globals, "INVALID_CONFIG", err.Error(), hintForConfig(err)), err)
	}

	eng, err := engine.New(engineOptions(cfg), globals.logger())
	if err != nil {
		return withCause(outputErrorCommon(globals, "INVALID_CONFIG", err.Error(), hintForConfig(err)), err)
	}

	reader, err := newReader(globals, cfg, c.SourceFlags)
	if err != nil {
		return withCause(outputErrorCommon(globals, "INVALID_FILTER", err.Error(), hintForFilter(err)), err)
	}

	files := c.Files
	if len(files) == 0 {
		for _, name := range generate.PresetNames() {
			files = append(files, filepath.Join(c.Dir, name))
		}
	}

	format := output.Format(globals.Format)
	if c.CSV {
		format = output.FormatCSV
	}
	emitter := output.NewEmitter(globals.Stdout, format, globals.plainText())

	runner := bench.NewRunner(bench.Config{
		Runs:    cfg.Bench.Runs,
		Warmup:  cfg.Bench.Warmup,
		Workers: cfg.Workers,
	}, eng, reader.ReadFile, globals.clock(), globals.logger())

	// CSV stays parseable: warnings go to stderr
	warnTo := emitter
	if c.CSV {
		warnTo = nil
	}
	results, err := runner.Run(files, func(path string, _ error) {
		emitWarning(globals, warnTo, fmt.Sprintf("file not found, skipping: %s", path))
	})
	if err != nil {
		return withCause(outputErrorCommon(globals, errorCode(err), err.Error(), hintForRead(err)), err)
	}
	if len(results) == 0 {
		return outputErrorCommon(globals, "NO_FILES", "no benchmark input files found",
			"Run `logpar generate` first, or pass log files explicitly")
	}

	if err := emitter.Benchmarks(results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if c.Output != "" {
		if err := writeCSVFile(c.Output, results); err != nil {
			return outputErrorCommon(globals, "WRITE_ERROR", err.Error())
		}
		globals.Debug("results written to %s", c.Output)
	}

	for _, r := range results {
		if !r.Consistent {
			return outputErrorCommon(globals, "INCONSISTENT_RESULTS",
				fmt.Sprintf("serial and parallel results differ for %s", r.File))
		}
	}
	return nil
}

func writeCSVFile(path string, results []*domain.BenchmarkResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return output.NewCSVWriter(f).WriteBenchmarks(results)
}
