// Package partition maps global body indices onto worker ranks.
//
// The mapping is static for a run: worker r owns the contiguous
// half-open range [r*per, (r+1)*per) with per = bodyCount/workers.
// Uneven division is rejected up front; there is no padding or
// rebalancing fallback.
package partition

import "fmt"

// Range is a half-open index interval [Begin, End).
type Range struct {
	Begin, End int
}

func (r Range) Len() int { return r.End - r.Begin }

// Validate reports whether bodyCount can be split evenly across workers.
func Validate(bodyCount, workers int) error {
	if workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", workers)
	}
	if bodyCount <= 0 {
		return fmt.Errorf("body count must be positive, got %d", bodyCount)
	}
	if bodyCount%workers != 0 {
		return fmt.Errorf("body count %d not divisible by %d workers", bodyCount, workers)
	}
	return nil
}

// For returns the range owned by rank. Callers must have validated
// (bodyCount, workers) first.
func For(rank, workers, bodyCount int) Range {
	per := bodyCount / workers
	return Range{Begin: rank * per, End: (rank + 1) * per}
}

// Ranges returns every worker's range in rank order.
func Ranges(bodyCount, workers int) ([]Range, error) {
	if err := Validate(bodyCount, workers); err != nil {
		return nil, err
	}
	ranges := make([]Range, workers)
	for rank := 0; rank < workers; rank++ {
		ranges[rank] = For(rank, workers, bodyCount)
	}
	return ranges, nil
}
