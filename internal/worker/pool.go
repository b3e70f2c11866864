// Package worker provides a small fixed-size pool that maps a function over
// a slice of inputs while preserving input order in the results.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Func processes a single input.
type Func[T any, R any] func(ctx context.Context, input T) (R, error)

// Result pairs one input with its outcome.
type Result[T any, R any] struct {
	Input T
	Value R
	Err   error
}

// Pool runs a Func over inputs with bounded concurrency.
type Pool[T any, R any] struct {
	size int
	fn   Func[T, R]
}

// NewPool creates a pool with at least one worker.
func NewPool[T any, R any](size int, fn Func[T, R]) *Pool[T, R] {
	if size < 1 {
		size = 1
	}
	return &Pool[T, R]{size: size, fn: fn}
}

// Execute maps the pool function over all inputs. Each result lands at the
// index of its input, so callers observe input order regardless of
// scheduling. Cancelling ctx stops the pool early; slots not processed by
// then keep their zero value.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Result[T, R] {
	results := make([]Result[T, R], len(inputs))
	indexes := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.size; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-indexes:
					if !ok {
						return
					}
					value, err := p.fn(ctx, inputs[idx])
					results[idx] = Result[T, R]{
						Input: inputs[idx],
						Value: value,
						Err:   err,
					}
					if err != nil {
						log.Debug().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
					}
				}
			}
		}(w)
	}

send:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break send
		case indexes <- i:
		}
	}
	close(indexes)

	wg.Wait()
	return results
}
