package contentgen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// dispatch fans a batch of inputs out over at most limit concurrent
// workers and returns results in input order. Zero or negative limit
// means no bound. The worker is total, so dispatch is too; the group
// error path is unused and exists only for the errgroup contract.
func dispatch[In, Out any](ctx context.Context, limit int, inputs []In, work func(context.Context, In) Out) []Out {
	results := make([]Out, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		g.Go(func() error {
			results[i] = work(ctx, in)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors
	return results
}
