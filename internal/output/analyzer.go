package output

import (
	"sort"
	"time"

	"github.com/vburojevic/logpar/internal/aggregate"
	"github.com/vburojevic/logpar/internal/domain"
)

// DefaultTopN is the number of entries shown per ranked section
const DefaultTopN = 5

// ReportMeta describes the run that produced a Stats
type ReportMeta struct {
	Mode    string
	Workers int
	TopN    int
	Elapsed time.Duration
	Files   []string
}

// NewReport builds the read-only report for stats
func NewReport(stats *aggregate.Stats, meta ReportMeta) *domain.Report {
	r := domain.NewReport()
	r.Mode = meta.Mode
	r.Workers = meta.Workers
	r.Files = meta.Files
	r.TopN = meta.TopN
	r.ElapsedSeconds = meta.Elapsed.Seconds()

	if stats == nil {
		return r
	}
	r.Lines = stats.Lines
	r.Keywords = stats.Keywords.Totals()
	r.UniqueIPs = len(stats.IPCount)
	r.UniqueErrors = len(stats.ErrorMessages)
	r.TopIPs = TopN(stats.IPCount, meta.TopN)
	r.TopErrors = TopN(stats.ErrorMessages, meta.TopN)
	return r
}

// TopN returns the n most frequent keys by count, highest first. Keys with
// equal counts come out in no particular order. n <= 0 yields an empty slice.
func TopN(hist map[string]int64, n int) []domain.Entry {
	if n <= 0 || len(hist) == 0 {
		return []domain.Entry{}
	}

	entries := make([]domain.Entry, 0, len(hist))
	for key, count := range hist {
		entries = append(entries, domain.Entry{Key: key, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
