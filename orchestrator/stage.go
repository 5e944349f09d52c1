package orchestrator

import (
	"context"
	"sync"
)

// stageResult wraps one processed input with its error, keeping the input's
// original position.
type stageResult[Out any] struct {
	value Out
	err   error
	index int
}

// runBounded executes process over all inputs with at most concurrency
// workers. Results come back in input order. Articles within one run share
// no mutable state, so fan-out is safe; concurrency 1 degenerates to the
// sequential loop.
func runBounded[In, Out any](ctx context.Context, concurrency int, inputs []In,
	process func(ctx context.Context, input In) (Out, error),
) []stageResult[Out] {
	if len(inputs) == 0 {
		return nil
	}

	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(inputs) {
		concurrency = len(inputs)
	}

	results := make([]stageResult[Out], len(inputs))
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(idx int, in In) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// Cancellation stops scheduling further articles; already
				// persisted records stay valid for the next run's dedup gate.
				results[idx] = stageResult[Out]{err: ctx.Err(), index: idx}
				return
			}

			if ctx.Err() != nil {
				results[idx] = stageResult[Out]{err: ctx.Err(), index: idx}
				return
			}

			out, err := process(ctx, in)
			results[idx] = stageResult[Out]{value: out, err: err, index: idx}
		}(i, input)
	}

	wg.Wait()

	return results
}
