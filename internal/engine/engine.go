// Package engine schedules classification and aggregation of log lines,
// either on a single goroutine or across a fixed pool of workers.
//
// In parallel mode every worker classifies its span into a private
// aggregate.Stats. Nothing shared is touched until the worker's span is
// finished; only then is the partial folded into the shared result, so the
// serialized cost is proportional to the number of distinct keys, not the
// number of lines.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vburojevic/logpar/internal/aggregate"
	"github.com/vburojevic/logpar/internal/classify"
)

// DefaultWorkers is the worker count used when none is configured
const DefaultWorkers = 4

// ErrInvalidWorkers is returned when the worker count cannot form a partition
var ErrInvalidWorkers = errors.New("worker count must be at least 1")

// Mode selects serial or parallel execution
type Mode string

const (
	ModeSerial   Mode = "serial"
	ModeParallel Mode = "parallel"
)

// ParseMode converts a flag value to a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSerial:
		return ModeSerial, nil
	case "", ModeParallel:
		return ModeParallel, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want serial or parallel)", s)
	}
}

// MergeMode selects how worker partials reach the shared result
type MergeMode string

const (
	// MergeLocked folds histograms under a mutex and reduces the scalar
	// counters with atomic adds.
	MergeLocked MergeMode = "locked"
	// MergeCollector sends partials over a channel to one goroutine that
	// owns the shared result.
	MergeCollector MergeMode = "collector"
)

// ParseMergeMode converts a config/flag value to a MergeMode
func ParseMergeMode(s string) (MergeMode, error) {
	switch MergeMode(s) {
	case "", MergeLocked:
		return MergeLocked, nil
	case MergeCollector:
		return MergeCollector, nil
	default:
		return "", fmt.Errorf("unknown merge mode %q (want locked or collector)", s)
	}
}

// Options configures parallel execution
type Options struct {
	Workers  int
	Strategy Strategy
	Merge    MergeMode
}

// DefaultOptions returns 4 contiguous workers with locked merging
func DefaultOptions() Options {
	return Options{
		Workers:  DefaultWorkers,
		Strategy: StrategyContiguous,
		Merge:    MergeLocked,
	}
}

// Validate rejects options that cannot be scheduled
func (o Options) Validate() error {
	if o.Workers <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	if _, err := ParseMergeMode(string(o.Merge)); err != nil {
		return err
	}
	return nil
}

// Engine runs analyses with a fixed set of options
type Engine struct {
	opts   Options
	logger *zap.Logger
}

// New creates an engine. A nil logger disables logging.
func New(opts Options, logger *zap.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, logger: logger}, nil
}

// Options returns the options the engine was built with
func (e *Engine) Options() Options {
	return e.opts
}

// Run analyzes lines in the requested mode
func (e *Engine) Run(lines []string, mode Mode) (*aggregate.Stats, error) {
	switch mode {
	case ModeSerial:
		return e.Serial(lines), nil
	case ModeParallel, "":
		return e.Parallel(lines)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// Serial analyzes lines in input order on the calling goroutine
func (e *Engine) Serial(lines []string) *aggregate.Stats {
	stats := aggregate.New()
	for _, line := range lines {
		stats.Merge(classify.Classify(line))
	}
	e.logger.Debug("serial run complete", zap.Int("lines", len(lines)))
	return stats
}

// Parallel analyzes lines across the configured number of workers
func (e *Engine) Parallel(lines []string) (*aggregate.Stats, error) {
	spans, err := Partition(len(lines), e.opts.Workers, e.opts.Strategy)
	if err != nil {
		return nil, err
	}

	var stats *aggregate.Stats
	switch e.opts.Merge {
	case MergeCollector:
		stats = e.runCollector(lines, spans)
	default:
		stats = e.runLocked(lines, spans)
	}

	e.logger.Debug("parallel run complete",
		zap.Int("lines", len(lines)),
		zap.Int("workers", len(spans)),
		zap.String("strategy", string(e.opts.Strategy)),
		zap.String("merge", string(e.opts.Merge)),
	)
	return stats, nil
}

// accumulate classifies one span into a fresh partial
func accumulate(lines []string, span Span) *aggregate.Stats {
	partial := aggregate.New()
	span.Each(func(i int) {
		partial.Merge(classify.Classify(lines[i]))
	})
	return partial
}

// counters is the lock-free reduction target for the scalar counters
type counters struct {
	lines, info, errs, warning, debug atomic.Int64
}

func (c *counters) add(p *aggregate.Stats) {
	c.lines.Add(p.Lines)
	c.info.Add(p.Keywords.Info)
	c.errs.Add(p.Keywords.Error)
	c.warning.Add(p.Keywords.Warning)
	c.debug.Add(p.Keywords.Debug)
}

func (c *counters) store(s *aggregate.Stats) {
	s.Lines = c.lines.Load()
	s.Keywords = aggregate.KeywordCounts{
		Info:    c.info.Load(),
		Error:   c.errs.Load(),
		Warning: c.warning.Load(),
		Debug:   c.debug.Load(),
	}
}

func (e *Engine) runLocked(lines []string, spans []Span) *aggregate.Stats {
	shared := aggregate.New()
	var (
		mu  sync.Mutex
		sum counters
		g   errgroup.Group
	)

	for w, span := range spans {
		g.Go(func() error {
			partial := accumulate(lines, span)
			sum.add(partial)

			mu.Lock()
			shared.AddHistograms(partial)
			mu.Unlock()

			e.logger.Debug("worker merged",
				zap.Int("worker", w),
				zap.Int("lines", span.Len()),
				zap.Int("ips", len(partial.IPCount)),
				zap.Int("messages", len(partial.ErrorMessages)),
			)
			return nil
		})
	}
	// Workers never fail; Wait is only a join.
	_ = g.Wait()

	sum.store(shared)
	return shared
}

func (e *Engine) runCollector(lines []string, spans []Span) *aggregate.Stats {
	shared := aggregate.New()
	partials := make(chan *aggregate.Stats, len(spans))
	done := make(chan struct{})

	go func() {
		defer close(done)
		for p := range partials {
			shared.Add(p)
		}
	}()

	var g errgroup.Group
	for w, span := range spans {
		g.Go(func() error {
			partial := accumulate(lines, span)
			e.logger.Debug("worker finished",
				zap.Int("worker", w),
				zap.Int("lines", span.Len()),
			)
			partials <- partial
			return nil
		})
	}
	_ = g.Wait()
	close(partials)
	<-done

	return shared
}

// Serial analyzes lines on one goroutine without logging
func Serial(lines []string) *aggregate.Stats {
	e := &Engine{opts: DefaultOptions(), logger: zap.NewNop()}
	return e.Serial(lines)
}

// Parallel analyzes lines with the given options without logging
func Parallel(lines []string, opts Options) (*aggregate.Stats, error) {
	e, err := New(opts, nil)
	if err != nil {
		return nil, err
	}
	return e.Parallel(lines)
}
