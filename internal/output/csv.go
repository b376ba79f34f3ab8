package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vburojevic/logpar/internal/domain"
)

// CSVHeader is the benchmark CSV column set
var CSVHeader = []string{"Log File", "NumLines", "SerialTime(s)", "ParallelTime(s)", "Speedup", "Efficiency(%)"}

// CSVWriter writes benchmark results as CSV rows
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSV writer. The header is written before the first row.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteBenchmark appends one result row
func (c *CSVWriter) WriteBenchmark(b *domain.BenchmarkResult) error {
	if !c.wroteHeader {
		if err := c.w.Write(CSVHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	return c.w.Write(CSVRecord(b))
}

// WriteBenchmarks writes all results, or just the header when there are none
func (c *CSVWriter) WriteBenchmarks(results []*domain.BenchmarkResult) error {
	for _, b := range results {
		if err := c.WriteBenchmark(b); err != nil {
			return err
		}
	}
	if !c.wroteHeader {
		if err := c.w.Write(CSVHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	return c.Flush()
}

// Flush writes buffered rows to the underlying writer
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// CSVRecord formats a result: times with 6 decimals, ratios with 2
func CSVRecord(b *domain.BenchmarkResult) []string {
	return []string{
		b.File,
		strconv.Itoa(b.Lines),
		formatSeconds(b.SerialSeconds),
		formatSeconds(b.ParallelSeconds),
		formatRatio(b.Speedup),
		formatRatio(b.Efficiency),
	}
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64)
}
