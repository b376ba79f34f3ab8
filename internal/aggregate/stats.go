// Package aggregate owns the counters and histograms produced by an
// analysis run and the operations that fold observations and partial
// results into them.
//
// Merge and Add are commutative sums, so the final Stats never depends on
// the order lines were seen or on how they were split between workers.
package aggregate

import (
	"maps"

	"github.com/vburojevic/logpar/internal/domain"
)

// KeywordCounts holds one counter per keyword marker
type KeywordCounts struct {
	Info    int64
	Error   int64
	Warning int64
	Debug   int64
}

// Add returns the element-wise sum of two counter sets
func (k KeywordCounts) Add(o KeywordCounts) KeywordCounts {
	return KeywordCounts{
		Info:    k.Info + o.Info,
		Error:   k.Error + o.Error,
		Warning: k.Warning + o.Warning,
		Debug:   k.Debug + o.Debug,
	}
}

// Totals converts the counters to their output form
func (k KeywordCounts) Totals() domain.KeywordTotals {
	return domain.KeywordTotals{
		Info:    k.Info,
		Error:   k.Error,
		Warning: k.Warning,
		Debug:   k.Debug,
	}
}

// Stats is the aggregate of a set of observations.
// It is not safe for concurrent mutation; the engine gives every worker its
// own Stats and serializes folds into the shared one.
type Stats struct {
	Lines         int64
	Keywords      KeywordCounts
	IPCount       map[string]int64
	ErrorMessages map[string]int64
}

// New returns empty Stats
func New() *Stats {
	return &Stats{
		IPCount:       make(map[string]int64),
		ErrorMessages: make(map[string]int64),
	}
}

// Merge applies one observation
func (s *Stats) Merge(obs domain.Observation) {
	s.Lines++
	if obs.Info {
		s.Keywords.Info++
	}
	if obs.Error {
		s.Keywords.Error++
	}
	if obs.Warning {
		s.Keywords.Warning++
	}
	if obs.Debug {
		s.Keywords.Debug++
	}
	if obs.HasIP() {
		s.IPCount[obs.IP]++
	}
	if obs.HasErrorMessage() {
		s.ErrorMessages[obs.ErrorMessage]++
	}
}

// Add folds other into s. other is not modified.
func (s *Stats) Add(other *Stats) {
	if other == nil {
		return
	}
	s.Lines += other.Lines
	s.Keywords = s.Keywords.Add(other.Keywords)
	s.AddHistograms(other)
}

// AddHistograms folds only the IP and error-message histograms of other
// into s. Used when the scalar counters are reduced separately.
func (s *Stats) AddHistograms(other *Stats) {
	for ip, n := range other.IPCount {
		s.IPCount[ip] += n
	}
	for msg, n := range other.ErrorMessages {
		s.ErrorMessages[msg] += n
	}
}

// Combine returns a new Stats equal to a plus b
func Combine(a, b *Stats) *Stats {
	out := New()
	out.Add(a)
	out.Add(b)
	return out
}

// Clone returns a deep copy
func (s *Stats) Clone() *Stats {
	return &Stats{
		Lines:         s.Lines,
		Keywords:      s.Keywords,
		IPCount:       maps.Clone(s.IPCount),
		ErrorMessages: maps.Clone(s.ErrorMessages),
	}
}

// Equal reports whether both Stats hold the same counters and histograms.
// A nil map and an empty map compare equal.
func (s *Stats) Equal(other *Stats) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Lines == other.Lines &&
		s.Keywords == other.Keywords &&
		maps.Equal(s.IPCount, other.IPCount) &&
		maps.Equal(s.ErrorMessages, other.ErrorMessages)
}

// IsEmpty reports whether nothing has been aggregated
func (s *Stats) IsEmpty() bool {
	return s.Lines == 0 && s.Keywords == (KeywordCounts{}) &&
		len(s.IPCount) == 0 && len(s.ErrorMessages) == 0
}
