package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/logpar/internal/domain"
)

// NDJSONWriter writes reports and events as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // log messages stay readable
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
	File          string `json:"file,omitempty"`
	Lines         int    `json:"lines,omitempty"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// MetadataOutput describes the build of the running binary
type MetadataOutput struct {
	Type          string `json:"type"` // Always "metadata"
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	BuildDate     string `json:"build_date,omitempty"`
}

// SourceStatsOutput reports what the reader dropped before analysis
type SourceStatsOutput struct {
	Type          string `json:"type"` // Always "source_stats"
	SchemaVersion int    `json:"schemaVersion"`
	Read          int    `json:"read"`
	Kept          int    `json:"kept"`
	Filtered      int    `json:"filtered"`
	Invalid       int    `json:"invalid"`
}

// WriteReport outputs an analysis report
func (w *NDJSONWriter) WriteReport(r *domain.Report) error {
	r.SchemaVersion = SchemaVersion
	return w.encoder.Encode(r)
}

// WriteBenchmark outputs one benchmark result
func (w *NDJSONWriter) WriteBenchmark(b *domain.BenchmarkResult) error {
	b.SchemaVersion = SchemaVersion
	return w.encoder.Encode(b)
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	err := domain.NewErrorOutput(code, message)
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteInfo outputs an informational message
func (w *NDJSONWriter) WriteInfo(message, file string, lines int) error {
	return w.encoder.Encode(&InfoOutput{
		Type:          "info",
		SchemaVersion: SchemaVersion,
		Message:       message,
		File:          file,
		Lines:         lines,
	})
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteMetadata outputs build metadata
func (w *NDJSONWriter) WriteMetadata(version, commit, buildDate string) error {
	return w.encoder.Encode(&MetadataOutput{
		Type:          "metadata",
		SchemaVersion: SchemaVersion,
		Version:       version,
		Commit:        commit,
		BuildDate:     buildDate,
	})
}

// WriteSourceStats outputs reader counters
func (w *NDJSONWriter) WriteSourceStats(read, kept, filtered, invalid int) error {
	return w.encoder.Encode(&SourceStatsOutput{
		Type:          "source_stats",
		SchemaVersion: SchemaVersion,
		Read:          read,
		Kept:          kept,
		Filtered:      filtered,
		Invalid:       invalid,
	})
}
