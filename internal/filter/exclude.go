package filter

import (
	"regexp"
	"strings"
)

// ExcludePatternFilter drops lines matching a regex pattern
type ExcludePatternFilter struct {
	pattern *regexp.Regexp
}

// NewExcludePatternFilter creates an exclusion filter from a pattern string
func NewExcludePatternFilter(pattern string) (*ExcludePatternFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludePatternFilter{pattern: re}, nil
}

// Match returns true if the line does NOT match the exclusion pattern
func (f *ExcludePatternFilter) Match(line string) bool {
	if f.pattern == nil {
		return true
	}
	return !f.pattern.MatchString(line)
}

// ExcludePrefixFilter drops lines starting with any of the given prefixes.
// Typical use is skipping comment or banner lines such as "#".
type ExcludePrefixFilter struct {
	prefixes []string
}

// NewExcludePrefixFilter creates a prefix exclusion filter
func NewExcludePrefixFilter(prefixes []string) *ExcludePrefixFilter {
	return &ExcludePrefixFilter{prefixes: prefixes}
}

// Match returns true if the line starts with none of the prefixes
func (f *ExcludePrefixFilter) Match(line string) bool {
	for _, p := range f.prefixes {
		if p != "" && strings.HasPrefix(line, p) {
			return false
		}
	}
	return true
}
