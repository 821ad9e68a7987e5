package edges

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circuits/point"
)

// Generate returns all n·(n−1)/2 edges of pts in row-major order.
//
// Complexity: O(n²) time and memory.
func Generate(pts []point.Point) []Edge {
	n := len(pts)
	out := make([]Edge, 0, Count(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, NewEdge(pts, i, j))
		}
	}

	return out
}

// GenerateParallel returns the same slice as Generate, computing rows on up to
// workers goroutines. workers <= 0 selects runtime.GOMAXPROCS(0).
//
// The context is checked before each row; on cancellation the partial result
// is discarded and ctx.Err() is returned.
func GenerateParallel(ctx context.Context, pts []point.Point, workers int) ([]Edge, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(pts)
	out := make([]Edge, Count(n))
	if n < 2 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Row i occupies [Offset(n,i), Offset(n,i+1)); rows never overlap.
			k := Offset(n, i)
			for j := i + 1; j < n; j++ {
				out[k] = NewEdge(pts, i, j)
				k++
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
