package filter

import (
	"strings"

	"github.com/vburojevic/logpar/internal/domain"
)

// KeywordFilter keeps lines containing at least one of the given markers
type KeywordFilter struct {
	keywords []domain.Keyword
}

// NewKeywordFilter creates a keyword filter
func NewKeywordFilter(keywords ...domain.Keyword) *KeywordFilter {
	return &KeywordFilter{keywords: keywords}
}

// Match returns true if the line contains any configured marker.
// An empty filter matches every line.
func (f *KeywordFilter) Match(line string) bool {
	if len(f.keywords) == 0 {
		return true
	}
	for _, k := range f.keywords {
		if strings.Contains(line, string(k)) {
			return true
		}
	}
	return false
}
