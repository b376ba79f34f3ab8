package engine

import "fmt"

// Strategy selects how line indices are assigned to workers
type Strategy string

const (
	// StrategyContiguous gives every worker one contiguous block
	StrategyContiguous Strategy = "contiguous"
	// StrategyStriped gives worker i the indices i, i+W, i+2W, ...
	StrategyStriped Strategy = "striped"
)

// ParseStrategy converts a config/flag value to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyContiguous:
		return StrategyContiguous, nil
	case StrategyStriped:
		return StrategyStriped, nil
	default:
		return "", fmt.Errorf("unknown partition strategy %q (want contiguous or striped)", s)
	}
}

// Span is the set of indices Start, Start+Stride, ... below End
type Span struct {
	Start  int
	End    int
	Stride int
}

// Len returns how many indices the span covers
func (s Span) Len() int {
	if s.Start >= s.End || s.Stride <= 0 {
		return 0
	}
	return (s.End - s.Start + s.Stride - 1) / s.Stride
}

// Each calls fn for every index in the span
func (s Span) Each(fn func(i int)) {
	if s.Stride <= 0 {
		return
	}
	for i := s.Start; i < s.End; i += s.Stride {
		fn(i)
	}
}

// Partition splits n indices across workers. Exactly one span is returned
// per worker and together they cover [0, n) once. Some spans may be empty
// when there are more workers than lines.
func Partition(n, workers int, strategy Strategy) ([]Span, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	if n < 0 {
		n = 0
	}

	spans := make([]Span, workers)
	switch strategy {
	case StrategyStriped:
		for w := range spans {
			spans[w] = Span{Start: w, End: n, Stride: workers}
		}
	case StrategyContiguous, "":
		size, extra := n/workers, n%workers
		start := 0
		for w := range spans {
			end := start + size
			if w < extra {
				end++
			}
			spans[w] = Span{Start: start, End: end, Stride: 1}
			start = end
		}
	default:
		return nil, fmt.Errorf("unknown partition strategy %q", strategy)
	}
	return spans, nil
}
