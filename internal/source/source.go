// Package source loads log files into memory as ordered line slices.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/vburojevic/logpar/internal/filter"
)

const readBufferSize = 64 * 1024

// Options controls how raw file lines become log lines
type Options struct {
	// JSONField, when set, treats every line as an NDJSON object and uses
	// the value at this gjson path as the log line.
	JSONField string

	// Filter drops lines before analysis. Nil keeps everything.
	Filter filter.Filter
}

// Stats counts what the reader dropped
type Stats struct {
	Read     int // non-empty lines seen
	Kept     int
	Filtered int // rejected by the filter
	Invalid  int // not JSON or missing the field in JSONField mode
}

// Reader reads log lines from files
type Reader struct {
	opts   Options
	logger *zap.Logger
	stats  Stats
}

// NewReader creates a reader. A nil logger disables logging.
func NewReader(opts Options, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{opts: opts, logger: logger}
}

// Stats returns counters accumulated over every read so far
func (r *Reader) Stats() Stats {
	return r.stats
}

// ReadFiles reads every file in order and concatenates their lines
func (r *Reader) ReadFiles(paths []string) ([]string, error) {
	var all []string
	for _, p := range paths {
		lines, err := r.ReadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}

// ReadFile reads one file. Empty lines are skipped.
func (r *Reader) ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.Debug("close failed", zap.String("file", path), zap.Error(err))
		}
	}()

	lines, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	r.logger.Debug("file loaded", zap.String("file", path), zap.Int("lines", len(lines)))
	return lines, nil
}

// Read reads lines from an arbitrary reader. Lines have no length limit.
func (r *Reader) Read(rd io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReaderSize(rd, readBufferSize)

	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line, ok := r.accept(raw); ok {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// accept applies field extraction and the filter to one raw line
func (r *Reader) accept(raw string) (string, bool) {
	line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
	if line == "" {
		return "", false
	}
	r.stats.Read++

	if r.opts.JSONField != "" {
		var ok bool
		line, ok = extractField(line, r.opts.JSONField)
		if !ok {
			r.stats.Invalid++
			return "", false
		}
	}

	if r.opts.Filter != nil && !r.opts.Filter.Match(line) {
		r.stats.Filtered++
		return "", false
	}

	r.stats.Kept++
	return line, true
}

// extractField pulls the log line out of an NDJSON record
func extractField(raw, path string) (string, bool) {
	if !gjson.Valid(raw) {
		return "", false
	}
	v := gjson.Get(raw, path)
	if !v.Exists() {
		return "", false
	}
	s := v.String()
	return s, s != ""
}

// ReadFiles reads paths with default options
func ReadFiles(paths ...string) ([]string, error) {
	return NewReader(Options{}, nil).ReadFiles(paths)
}
