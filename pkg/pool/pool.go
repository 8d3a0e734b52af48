// Package pool runs a bounded set of workers over a slice of inputs,
// preserving input order in the results. Screening uses it to fetch and
// score many symbols concurrently.
package pool

import (
	"context"
	"sync"
)

// Result pairs one input with its output or error.
type Result[T, R any] struct {
	Input T
	Value R
	Err   error
}

// Map applies fn to every input using at most workers goroutines.
// Results come back in input order. A cancelled context stops new work;
// inputs never started report ctx.Err().
func Map[T, R any](ctx context.Context, workers int, inputs []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]Result[T, R], len(inputs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = Result[T, R]{Input: inputs[i], Err: err}
					continue
				}
				value, err := fn(ctx, inputs[i])
				results[i] = Result[T, R]{Input: inputs[i], Value: value, Err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Values extracts the successful outputs from results, dropping errored ones.
func Values[T, R any](results []Result[T, R]) []R {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			values = append(values, r.Value)
		}
	}
	return values
}
