// Package generate writes synthetic logs in the DATE TIME LEVEL IP MESSAGE
// schema for benchmarks and demos.
package generate

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vburojevic/logpar/internal/domain"
)

// timestampLayout matches "2024-01-01 10:00:00"
const timestampLayout = "2006-01-02 15:04:05"

// spreadHours bounds the random offset applied to the current time
const spreadHours = 100

var messages = map[domain.Keyword][]string{
	domain.KeywordInfo: {
		"User login successful",
		"Service started",
		"Request completed",
		"Data synchronized",
		"Cache updated",
		"Connection established",
	},
	domain.KeywordError: {
		"Database connection failed",
		"Timeout occurred",
		"File not found",
		"Permission denied",
		"Memory allocation failed",
		"Service unavailable",
	},
	domain.KeywordWarning: {
		"Disk usage high",
		"Memory usage high",
		"Slow response time",
		"Cache miss rate increasing",
		"Network latency detected",
	},
	domain.KeywordDebug: {
		"Debugging mode enabled",
		"Debugging trace point",
		"Variable dump requested",
		"Performance monitor active",
	},
}

// Presets are the benchmark file sizes, by file name
var Presets = map[string]int{
	"log_small.txt":   100,
	"log_medium.txt":  1000,
	"log_large.txt":   10000,
	"log_xlarge.txt":  50000,
	"log_xxlarge.txt": 100000,
}

// PresetNames returns preset file names ordered by size
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]] < Presets[names[j]]
	})
	return names
}

// Generator produces random log lines
type Generator struct {
	clock clock.Clock
	rand  *rand.Rand
	ips   []string
}

// Option configures a Generator
type Option func(*Generator)

// WithClock sets the time source used as the center of the timestamp range
func WithClock(c clock.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithSeed makes the output reproducible
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rand = rand.New(rand.NewPCG(seed, seed)) }
}

// WithIPPool overrides the pool of source addresses
func WithIPPool(ips []string) Option {
	return func(g *Generator) {
		if len(ips) > 0 {
			g.ips = ips
		}
	}
}

// New creates a generator with 50 addresses 192.168.0.1..50
func New(opts ...Option) *Generator {
	ips := make([]string, 50)
	for i := range ips {
		ips[i] = fmt.Sprintf("192.168.0.%d", i+1)
	}
	g := &Generator{
		clock: clock.New(),
		rand:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		ips:   ips,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Line returns one random log line
func (g *Generator) Line() string {
	level := domain.Keywords[g.rand.IntN(len(domain.Keywords))]
	pool := messages[level]
	msg := pool[g.rand.IntN(len(pool))]
	ip := g.ips[g.rand.IntN(len(g.ips))]

	offset := time.Duration(g.rand.IntN(2*spreadHours+1)-spreadHours)*time.Hour +
		time.Duration(g.rand.IntN(60))*time.Minute +
		time.Duration(g.rand.IntN(60))*time.Second
	ts := g.clock.Now().Add(offset)

	return fmt.Sprintf("%s %s %s %s", ts.Format(timestampLayout), level, ip, msg)
}

// Write writes n lines to w
func (g *Generator) Write(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if _, err := bw.WriteString(g.Line()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes n lines to path, creating parent directories
func (g *Generator) WriteFile(path string, n int) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return g.Write(f, n)
}
