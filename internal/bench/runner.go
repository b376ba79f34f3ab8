// Package bench times serial and parallel analysis of log files and derives
// speedup and efficiency.
package bench

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/logpar/internal/aggregate"
	"github.com/vburojevic/logpar/internal/domain"
)

// DefaultRuns is the number of timed runs averaged per mode
const DefaultRuns = 5

// Analyzer is the part of the engine the runner times
type Analyzer interface {
	Serial(lines []string) *aggregate.Stats
	Parallel(lines []string) (*aggregate.Stats, error)
}

// LoadFunc reads the lines of one file
type LoadFunc func(path string) ([]string, error)

// Config configures a Runner
type Config struct {
	Runs    int  // timed runs per mode, averaged
	Warmup  bool // one untimed run per mode before timing
	Workers int  // worker count used for efficiency
}

// Runner benchmarks files one at a time
type Runner struct {
	cfg      Config
	analyzer Analyzer
	load     LoadFunc
	clock    clock.Clock
	logger   *zap.Logger
}

// NewRunner creates a runner. A nil clock uses wall time; a nil logger
// disables logging.
func NewRunner(cfg Config, analyzer Analyzer, load LoadFunc, clk clock.Clock, logger *zap.Logger) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, analyzer: analyzer, load: load, clock: clk, logger: logger}
}

// Run benchmarks every path. Missing files are skipped with a warning; any
// other failure aborts. onSkip, when non-nil, is told about each skipped file.
func (r *Runner) Run(paths []string, onSkip func(path string, err error)) ([]*domain.BenchmarkResult, error) {
	results := make([]*domain.BenchmarkResult, 0, len(paths))
	for _, path := range paths {
		res, err := r.RunFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("skipping missing file", zap.String("file", path))
			if onSkip != nil {
				onSkip(path, err)
			}
			continue
		}
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunFile benchmarks a single file
func (r *Runner) RunFile(path string) (*domain.BenchmarkResult, error) {
	lines, err := r.load(path)
	if err != nil {
		return nil, err
	}

	if r.cfg.Warmup {
		r.analyzer.Serial(lines)
		if _, err := r.analyzer.Parallel(lines); err != nil {
			return nil, err
		}
	}

	var (
		serialTotal, parallelTotal time.Duration
		serialStats, parallelStats *aggregate.Stats
	)
	for i := 0; i < r.cfg.Runs; i++ {
		start := r.clock.Now()
		serialStats = r.analyzer.Serial(lines)
		serialTotal += r.clock.Since(start)

		start = r.clock.Now()
		parallelStats, err = r.analyzer.Parallel(lines)
		if err != nil {
			return nil, fmt.Errorf("parallel run on %s: %w", path, err)
		}
		parallelTotal += r.clock.Since(start)
	}

	runs := time.Duration(r.cfg.Runs)
	res := domain.NewBenchmarkResult(path, len(lines), r.cfg.Workers, r.cfg.Runs,
		serialTotal/runs, parallelTotal/runs)
	res.Consistent = serialStats.Equal(parallelStats)
	if !res.Consistent {
		r.logger.Error("serial and parallel results differ", zap.String("file", path))
	}

	r.logger.Info("benchmark complete",
		zap.String("file", path),
		zap.Int("lines", len(lines)),
		zap.Duration("serial", res.SerialTime),
		zap.Duration("parallel", res.ParallelTime),
		zap.Float64("speedup", res.Speedup),
	)
	return res, nil
}
