// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrNilFunc is returned when Map is called without a function.
var ErrNilFunc = errors.New("parallel: nil function")

// Workers resolves the effective pool size for n items:
// workers ≤ 0 means runtime.NumCPU(), and the pool never exceeds n.
func Workers(workers, n int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	return workers
}

// Map applies f to every item using at most Workers(workers, len(items))
// goroutines. out[i] always corresponds to items[i].
//
// Errors:
//   - ErrNilFunc when f is nil.
//   - The first error returned by f, wrapped with the failing index. The
//     context passed to the other calls is cancelled at that point.
//   - ctx.Err() when ctx is cancelled before every item was started.
//
// No partial output is returned on error.
func Map[T, U any](ctx context.Context, items []T, f func(context.Context, T) (U, error), workers int) ([]U, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	out := make([]U, len(items))
	if len(items) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers, len(items)))
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go.mod targets go1.21)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := f(gctx, items[i])
			if err != nil {
				return fmt.Errorf("parallel: item %d: %w", i, err)
			}
			out[i] = u

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
