package filter

import (
	"regexp"
)

// RegexFilter keeps lines matching a pattern
type RegexFilter struct {
	pattern *regexp.Regexp
}

// NewRegexFilter creates a regex filter from a pattern string
func NewRegexFilter(pattern string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexFilter{pattern: re}, nil
}

// NewRegexFilterFromRegexp creates a regex filter from a compiled regexp
func NewRegexFilterFromRegexp(re *regexp.Regexp) *RegexFilter {
	return &RegexFilter{pattern: re}
}

// Match returns true if the line matches the pattern
func (f *RegexFilter) Match(line string) bool {
	if f.pattern == nil {
		return true
	}
	return f.pattern.MatchString(line)
}
