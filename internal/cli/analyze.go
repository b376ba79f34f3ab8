package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vburojevic/logpar/internal/engine"
	"github.com/vburojevic/logpar/internal/output"
)

// AnalyzeCmd analyzes one or more log files
type AnalyzeCmd struct {
	Files []string `arg:"" required:"" help:"Log files to analyze, concatenated in order"`
	Mode  string   `short:"m" default:"parallel" enum:"serial,parallel" help:"Run on one goroutine or across workers"`
	Top   int      `short:"n" default:"${config_top}" help:"Entries per ranked section (0 hides them)"`

	EngineFlags `embed:""`
	SourceFlags `embed:""`

	SourceStats bool `help:"Also emit a source_stats record with read/kept/filtered/invalid counts (ndjson only)"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	cfg := effectiveConfig(globals)
	c.EngineFlags.apply(cfg)
	c.SourceFlags.apply(cfg)
	cfg.Top = c.Top

	if err := cfg.Validate(); err != nil {
		return withCause(outputErrorCommon(globals, "INVALID_CONFIG", err.Error(), hintForConfig(err)), err)
	}

	mode, err := engine.ParseMode(c.Mode)
	if err != nil {
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

	lines, err := reader.ReadFiles(c.Files)
	if err != nil {
		return withCause(outputErrorCommon(globals, errorCode(err), err.Error(), hintForRead(err)), err)
	}

	emitter := globals.emitter()
	if len(lines) == 0 {
		emitWarning(globals, emitter, "no lines to analyze")
	}

	clk := globals.clock()
	start := clk.Now()
	stats, err := eng.Run(lines, mode)
	if err != nil {
		return withCause(outputErrorCommon(globals, "ANALYSIS_FAILED", err.Error()), err)
	}
	elapsed := clk.Since(start)

	workers := cfg.Workers
	if mode == engine.ModeSerial {
		workers = 1
	}

	globals.logger().Info("analysis complete",
		zap.String("mode", string(mode)),
		zap.Int("lines", len(lines)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", elapsed),
	)

	if c.SourceStats && globals.Format == "ndjson" {
		s := reader.Stats()
		if err := output.NewNDJSONWriter(globals.Stdout).WriteSourceStats(s.Read, s.Kept, s.Filtered, s.Invalid); err != nil {
			return err
		}
	}

	report := output.NewReport(stats, output.ReportMeta{
		Mode:    string(mode),
		Workers: workers,
		TopN:    cfg.Top,
		Elapsed: elapsed,
		Files:   c.Files,
	})
	if err := emitter.Report(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
