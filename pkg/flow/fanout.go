package flow

import (
	"context"
	"sync"
)

// FanOutResult is the outcome of one fan-out child, addressed by its input
// index.
type FanOutResult struct {
	Index int
	Err   error
}

// FanOut runs fn for indexes 0..total-1, launching in input order and
// bounded by maxParallel. Results are ordered by input index, never by
// completion order. Child failures are recorded per index; the caller
// decides the partial-failure policy. When ctx is cancelled, children not
// yet launched fail with the context error.
func FanOut(ctx context.Context, total, maxParallel int, fn func(ctx context.Context, index int) error) []FanOutResult {
	if total <= 0 {
		return nil
	}
	if maxParallel < 1 {
		maxParallel = 1
	}

	results := make([]FanOutResult, total)
	sem := make(chan struct{}, maxParallel)
	var wg sync.WaitGroup

	for i := 0; i < total; i++ {
		results[i].Index = i
		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer func() { <-sem }()
			// Each child writes only its own slot.
			results[index].Err = fn(ctx, index)
		}(i)
	}

	wg.Wait()
	return results
}
