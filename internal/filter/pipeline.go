package filter

import (
	"fmt"
	"regexp"
)

// Pipeline applies an optional include pattern followed by exclude patterns,
// so callers can reuse a single matcher.
type Pipeline struct {
	chain *Chain
}

func NewPipeline(pattern *regexp.Regexp, excludes []*regexp.Regexp) *Pipeline {
	if pattern == nil && len(excludes) == 0 {
		return nil
	}
	chain := NewChain()
	if pattern != nil {
		chain.Add(NewRegexFilterFromRegexp(pattern))
	}
	for _, ex := range excludes {
		chain.Add(&ExcludePatternFilter{pattern: ex})
	}
	return &Pipeline{chain: chain}
}

// CompilePipeline builds a pipeline from raw pattern strings.
// An empty pattern and no excludes yields a nil pipeline that matches everything.
func CompilePipeline(pattern string, excludes []string) (*Pipeline, error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	var ex []*regexp.Regexp
	for _, e := range excludes {
		if e == "" {
			continue
		}
		compiled, err := regexp.Compile(e)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", e, err)
		}
		ex = append(ex, compiled)
	}
	return NewPipeline(re, ex), nil
}

// Match returns true when the line passes all predicates.
func (p *Pipeline) Match(line string) bool {
	if p == nil {
		return true
	}
	return p.chain.Match(line)
}
