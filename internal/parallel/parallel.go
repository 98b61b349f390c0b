// Package parallel provides utilities for parallel execution of operations.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default concurrency limit for parallel operations.
const DefaultLimit = 10

// Result holds the result of one operation.
type Result[K any, R any] struct {
	Key   K
	Value R
	Err   error
}

// Execute runs fn for each key concurrently, bounded by DefaultLimit.
// Results are returned in the order of keys.
// Individual errors are captured in Result.Err rather than failing the entire operation.
func Execute[K any, R any](
	ctx context.Context,
	keys []K,
	fn func(ctx context.Context, key K) (R, error),
) []*Result[K, R] {
	return ExecuteWithLimit(ctx, keys, DefaultLimit, fn)
}

// ExecuteWithLimit is like Execute but with a custom concurrency limit.
// A limit below 1 means no limit.
func ExecuteWithLimit[K any, R any](
	ctx context.Context,
	keys []K,
	limit int,
	fn func(ctx context.Context, key K) (R, error),
) []*Result[K, R] {
	results := make([]*Result[K, R], len(keys))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, key := range keys {
		g.Go(func() error {
			value, err := fn(gctx, key)
			results[i] = &Result[K, R]{Key: key, Value: value, Err: err}

			return nil // Don't fail the group on individual errors
		})
	}

	_ = g.Wait()

	return results
}

// Errors returns the failed results.
func Errors[K any, R any](results []*Result[K, R]) []*Result[K, R] {
	var failed []*Result[K, R]

	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}
