package output

import (
	"io"

	"github.com/vburojevic/logpar/internal/domain"
)

// Format selects the output encoding
type Format string

const (
	FormatNDJSON Format = "ndjson"
	FormatText   Format = "text"
	FormatCSV    Format = "csv" // benchmark rows only
)

// Emitter is what commands write results through, whatever the format
type Emitter interface {
	Report(r *domain.Report) error
	Benchmarks(results []*domain.BenchmarkResult) error
	Error(code, msg string, hint ...string) error
	Warning(msg string) error
}

// NewEmitter picks an emitter for format. Unknown formats fall back to NDJSON.
func NewEmitter(w io.Writer, format Format, plain bool) Emitter {
	switch format {
	case FormatText:
		return &textEmitter{w: NewTextWriter(w, plain)}
	case FormatCSV:
		return &csvEmitter{csv: NewCSVWriter(w), ndjson: NewNDJSONWriter(w)}
	default:
		return &ndjsonEmitter{w: NewNDJSONWriter(w)}
	}
}

type ndjsonEmitter struct {
	w *NDJSONWriter
}

func (e *ndjsonEmitter) Report(r *domain.Report) error                { return e.w.WriteReport(r) }
func (e *ndjsonEmitter) Error(code, msg string, hint ...string) error { return e.w.WriteError(code, msg, hint...) }
func (e *ndjsonEmitter) Warning(msg string) error                     { return e.w.WriteWarning(msg) }
func (e *ndjsonEmitter) Benchmarks(results []*domain.BenchmarkResult) error {
	for _, b := range results {
		if err := e.w.WriteBenchmark(b); err != nil {
			return err
		}
	}
	return nil
}

type textEmitter struct {
	w *TextWriter
}

func (e *textEmitter) Report(r *domain.Report) error                      { return e.w.WriteReport(r) }
func (e *textEmitter) Benchmarks(results []*domain.BenchmarkResult) error { return e.w.WriteBenchmarks(results) }
func (e *textEmitter) Error(code, msg string, hint ...string) error       { return e.w.WriteError(code, msg, hint...) }
func (e *textEmitter) Warning(msg string) error                           { return e.w.WriteWarning(msg) }

// csvEmitter writes benchmark rows as CSV; anything else goes out as NDJSON
type csvEmitter struct {
	csv    *CSVWriter
	ndjson *NDJSONWriter
}

func (e *csvEmitter) Report(r *domain.Report) error                      { return e.ndjson.WriteReport(r) }
func (e *csvEmitter) Benchmarks(results []*domain.BenchmarkResult) error { return e.csv.WriteBenchmarks(results) }
func (e *csvEmitter) Error(code, msg string, hint ...string) error       { return e.ndjson.WriteError(code, msg, hint...) }
func (e *csvEmitter) Warning(msg string) error                           { return e.ndjson.WriteWarning(msg) }
