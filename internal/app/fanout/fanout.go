// Package fanout splits an id list into fixed-size batches and looks the
// batches up concurrently. The order-details sync uses it for product
// lookups, which the backend caps per request.
package fanout

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Batches calls lookup once per chunk of at most size ids, with no more than
// workers lookups in flight. Found items come back in chunk order. Every
// failed chunk contributes to the joined error; the items of chunks that
// succeeded are still returned.
//
// A chunk that is still waiting for a worker when ctx ends is not looked up
// and reports ctx.Err().
func Batches[ID, R any](
	ctx context.Context,
	ids []ID,
	size, workers int,
	lookup func(context.Context, []ID) ([]R, error),
) ([]R, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	size = max(size, 1)
	workers = max(workers, 1)

	chunks := slices.Collect(slices.Chunk(ids, size))
	found := make([][]R, len(chunks))
	errs := make([]error, len(chunks))

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		if err := sem.Acquire(ctx, 1); err != nil {
			for j := i; j < len(chunks); j++ {
				errs[j] = err
			}
			break
		}
		wg.Go(func() {
			defer sem.Release(1)
			found[i], errs[i] = lookup(ctx, chunk)
		})
	}
	wg.Wait()

	return slices.Concat(found...), errors.Join(errs...)
}
