package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vburojevic/logpar/internal/domain"
	"github.com/vburojevic/logpar/internal/filter"
)

// buildFilter combines include/exclude patterns, keyword selection and
// skipped prefixes into one line filter. Nil means keep every line.
func buildFilter(pattern string, exclude, keywords, skipPrefixes []string) (filter.Filter, error) {
	chain := filter.NewChain()

	pipeline, err := filter.CompilePipeline(pattern, exclude)
	if err != nil {
		return nil, err
	}
	if pipeline != nil {
		chain.Add(pipeline)
	}

	if len(keywords) > 0 {
		kws, err := parseKeywords(keywords)
		if err != nil {
			return nil, err
		}
		chain.Add(filter.NewKeywordFilter(kws...))
	}

	if len(skipPrefixes) > 0 {
		chain.Add(filter.NewExcludePrefixFilter(skipPrefixes))
	}

	if chain.Len() == 0 {
		return nil, nil
	}
	return chain, nil
}

func parseKeywords(values []string) ([]domain.Keyword, error) {
	out := make([]domain.Keyword, 0, len(values))
	for _, v := range values {
		kw := domain.Keyword(strings.ToUpper(strings.TrimSpace(v)))
		if !slices.Contains(domain.Keywords, kw) {
			return nil, fmt.Errorf("unknown keyword %q", v)
		}
		out = append(out, kw)
	}
	return out, nil
}
