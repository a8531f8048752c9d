package cascade

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
)

// Cursor is a stateful, paged enumeration handle over a live-store
// collection. An empty page signals end of data.
type Cursor[T any] interface {
	NextPage(ctx context.Context) ([]T, error)
}

// processAll drains the cursor page by page, applying step to every item.
// Results are accumulated in page order; memory stays bounded to one page
// plus the accumulator.
//
// Items within one page run on an errgroup limited to concurrency. The page
// is all-or-nothing: any item failure becomes the page's result and no
// further page is fetched. With concurrency 1 items run strictly in order
// and nothing after a failed item is started; with a higher limit, items
// already in flight when a sibling fails may still complete, but items not
// yet started observe the canceled group context and are skipped.
//
// queryName tags cursor failures so the caller can tell which enumeration
// broke.
func processAll[T any](
	ctx context.Context,
	cur Cursor[T],
	queryName string,
	concurrency int,
	step func(ctx context.Context, item T) (T, *failure.Failure),
) ([]T, *failure.Failure) {
	if concurrency < 1 {
		concurrency = 1
	}

	var out []T
	for {
		page, err := cur.NextPage(ctx)
		if err != nil {
			return nil, failure.Query(queryName, err)
		}
		if len(page) == 0 {
			return out, nil
		}

		results := make([]T, len(page))
		var (
			mu    sync.Mutex
			first *failure.Failure
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, item := range page {
			i, item := i, item
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				res, f := step(gctx, item)
				if f != nil {
					mu.Lock()
					if first == nil {
						first = f
					}
					mu.Unlock()
					return f
				}
				results[i] = res
				return nil
			})
		}
		_ = g.Wait()

		if first != nil {
			return nil, first
		}
		out = append(out, results...)
	}
}
