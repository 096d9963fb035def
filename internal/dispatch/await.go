package dispatch

import (
	"context"
	"sync"
)

// Await starts an operation that reports through a single-shot completion
// and blocks until it does or ctx ends. Calls to done after the first are
// ignored. If ctx ends first the operation keeps running; only the wait is
// abandoned.
func Await(ctx context.Context, start func(done func(error))) error {
	_, err := AwaitResult(ctx, func(done func(struct{}, error)) {
		start(func(err error) { done(struct{}{}, err) })
	})
	return err
}

// AwaitResult is Await for completions that carry a value.
func AwaitResult[T any](ctx context.Context, start func(done func(T, error))) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	var once sync.Once
	start(func(v T, err error) {
		once.Do(func() { ch <- result{v: v, err: err} })
	})

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
