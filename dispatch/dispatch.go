// Package dispatch triangulates batches of polygons on a bounded worker
// pool. Triangulation calls share nothing, so the only coordination needed
// is the concurrency limit and error collection.
package dispatch

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/procmesh/triangulate"
)

// TriangulateBatch triangulates every polygon with up to workers concurrent
// calls and returns results in input order. The first failure cancels the
// remaining work and is returned wrapped with the polygon's batch position;
// workers <= 0 means one worker per polygon.
func TriangulateBatch(ctx context.Context, polygons [][]triangulate.Point, workers int) ([][]int, error) {
	results := make([][]int, len(polygons))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, polygon := range polygons {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tris, err := triangulate.Triangulate(polygon)
			if err != nil {
				return errors.Wrapf(err, "polygon %d", i)
			}
			results[i] = tris
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
