package cellset

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hexglobe"
)

// FromLatLngs indexes every coordinate at the given resolution and returns
// the set of resulting cells. Shards are processed concurrently; the
// context is honored between cells.
func FromLatLngs(ctx context.Context, pts []hexglobe.LatLng, res hexglobe.Resolution, optFns ...Option) (*Set, error) {
	o := applyOptions(optFns)

	shards, err := runSharded(ctx, o, len(pts), func(ctx context.Context, shard int, lo, hi int, rb *roaring64.Bitmap) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rb.Add(uint64(hexglobe.CellFromLatLng(pts[i], res)))
		}
		return nil
	})
	if err != nil {
		o.logger.LogBuild(ctx, len(pts), 0, err)
		return nil, err
	}

	out := merge(shards)
	o.logger.LogBuild(ctx, len(pts), out.Cardinality(), nil)
	return out, nil
}

// FromDisks expands every origin cell to its grid disk of radius k and
// returns the union of all disks. Shards are processed concurrently; the
// context is honored between origins.
func FromDisks(ctx context.Context, origins []hexglobe.Cell, k int, optFns ...Option) (*Set, error) {
	o := applyOptions(optFns)

	shards, err := runSharded(ctx, o, len(origins), func(ctx context.Context, shard int, lo, hi int, rb *roaring64.Bitmap) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for c := range hexglobe.GridDisk(origins[i], k) {
				rb.Add(uint64(c))
			}
		}
		return nil
	})
	if err != nil {
		o.logger.LogBuild(ctx, len(origins), 0, err)
		return nil, err
	}

	out := merge(shards)
	o.logger.LogBuild(ctx, len(origins), out.Cardinality(), nil)
	return out, nil
}

// runSharded splits n inputs into contiguous shards, one per worker, and
// runs fn over each in its own goroutine with a private bitmap.
func runSharded(ctx context.Context, o options, n int, fn func(ctx context.Context, shard, lo, hi int, rb *roaring64.Bitmap) error) ([]*roaring64.Bitmap, error) {
	workers := o.parallelism
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	shards := make([]*roaring64.Bitmap, workers)
	for i := range shards {
		shards[i] = roaring64.New()
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		rb := shards[w]

		g.Go(func() error {
			if err := fn(ctx, w, lo, hi, rb); err != nil {
				return err
			}
			o.logger.LogShard(ctx, w, hi-lo)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shards, nil
}

func merge(shards []*roaring64.Bitmap) *Set {
	out := New()
	for _, rb := range shards {
		out.rb.Or(rb)
	}
	return out
}
