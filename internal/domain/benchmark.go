package domain

import "time"

// BenchmarkResult compares serial and parallel timings for one input file
type BenchmarkResult struct {
	Type          string `json:"type"` // Always "benchmark"
	SchemaVersion int    `json:"schemaVersion"`

	File    string `json:"file"`
	Lines   int    `json:"lines"`
	Workers int    `json:"workers"`
	Runs    int    `json:"runs"`

	SerialTime   time.Duration `json:"-"`
	ParallelTime time.Duration `json:"-"`

	SerialSeconds   float64 `json:"serialSeconds"`
	ParallelSeconds float64 `json:"parallelSeconds"`
	Speedup         float64 `json:"speedup"`
	Efficiency      float64 `json:"efficiency"` // percent of ideal linear speedup

	// Consistent is true when serial and parallel produced equal stats
	Consistent bool `json:"consistent"`
}

// NewBenchmarkResult derives the ratio fields from the averaged timings.
// A zero parallel time yields zero speedup rather than +Inf.
func NewBenchmarkResult(file string, lines, workers, runs int, serial, parallel time.Duration) *BenchmarkResult {
	r := &BenchmarkResult{
		Type:            "benchmark",
		File:            file,
		Lines:           lines,
		Workers:         workers,
		Runs:            runs,
		SerialTime:      serial,
		ParallelTime:    parallel,
		SerialSeconds:   serial.Seconds(),
		ParallelSeconds: parallel.Seconds(),
	}
	if parallel > 0 {
		r.Speedup = serial.Seconds() / parallel.Seconds()
	}
	if workers > 0 {
		r.Efficiency = r.Speedup / float64(workers) * 100
	}
	return r
}
