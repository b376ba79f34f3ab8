// Package classify turns raw log lines into observations.
//
// Everything here is a pure function of its input, so callers may classify
// lines from any number of goroutines without coordination.
package classify

import (
	"strings"

	"github.com/vburojevic/logpar/internal/domain"
)

// Classify maps one line to an Observation.
//
// Keyword markers are matched as plain substrings and are independent of
// each other. IP extraction is attempted on every line whatever markers
// matched; the error message is only kept for lines carrying ERROR.
// Lines that do not follow the DATE TIME LEVEL IP MESSAGE schema still
// get their keyword flags.
func Classify(line string) domain.Observation {
	obs := domain.Observation{
		Info:    strings.Contains(line, string(domain.KeywordInfo)),
		Error:   strings.Contains(line, string(domain.KeywordError)),
		Warning: strings.Contains(line, string(domain.KeywordWarning)),
		Debug:   strings.Contains(line, string(domain.KeywordDebug)),
	}

	rec, ok := ParseRecord(line)
	if !ok {
		return obs
	}
	if isDotted(rec.IP) {
		obs.IP = rec.IP
	}
	if obs.Error {
		obs.ErrorMessage = strings.TrimSpace(rec.Message)
	}
	return obs
}
