package spanning

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/circuits/clusters"
	"github.com/katalvlaran/circuits/edges"
	"github.com/katalvlaran/circuits/point"
)

// Controller holds a point set and its edges sorted by length. Each walk runs
// on its own fresh cluster store, so Bounded and Span never affect each other.
// A Controller is not safe for concurrent walks that share an Observer that
// is itself not concurrency-safe.
type Controller struct {
	points []point.Point
	sorted []edges.Edge
	opts   Options
}

// New generates and sorts every edge of pts.
//
// Steps:
//  1. Reject an empty point set with ErrEmptyInput.
//  2. Generate all n·(n−1)/2 edges, serially or on opts.Workers goroutines.
//  3. Stable-sort them by squared length.
//
// Complexity: O(n² log n) time, O(n²) memory.
func New(pts []point.Point, opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	var (
		sorted []edges.Edge
		err    error
	)
	if o.Workers == 1 {
		sorted = edges.Generate(pts)
	} else if sorted, err = edges.GenerateParallel(o.Context, pts, o.Workers); err != nil {
		return nil, fmt.Errorf("spanning: generate edges: %w", err)
	}
	edges.Sort(sorted)

	o.Observer.OnEdges(len(sorted))
	o.Logger.Info("edges prepared",
		zap.Int("points", len(pts)),
		zap.Int("edges", len(sorted)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Controller{
		points: slices.Clone(pts),
		sorted: sorted,
		opts:   o,
	}, nil
}

// Points returns the number of points.
func (c *Controller) Points() int { return len(c.points) }

// Edges returns the sorted edges. The slice is shared; callers must not modify it.
func (c *Controller) Edges() []edges.Edge { return c.sorted }

// Bounded walks the first k sorted edges (all of them if k exceeds the total)
// and reports cluster sizes and the product of the TopRanks largest.
func (c *Controller) Bounded(k int) (res BoundedResult, err error) {
	start := time.Now()
	defer func() { c.opts.Observer.OnDone(ModeBounded, time.Since(start), err) }()

	if k < 0 {
		return BoundedResult{}, fmt.Errorf("%w: %d", ErrNegativeBudget, k)
	}

	limit := min(k, len(c.sorted))
	store := clusters.New(len(c.points))
	res.Edges = limit
	for _, e := range c.sorted[:limit] {
		merged, err := c.step(ModeBounded, store, e)
		if err != nil {
			return BoundedResult{}, err
		}
		if merged {
			res.Merges++
		} else {
			res.Skips++
		}
	}

	res.Sizes = store.Sizes()
	slices.SortFunc(res.Sizes, func(a, b int) int { return b - a })
	res.Product = TopProduct(res.Sizes, TopRanks)

	c.opts.Logger.Info("bounded walk complete",
		zap.Int("budget", k),
		zap.Int("edges", res.Edges),
		zap.Int("merges", res.Merges),
		zap.Int("skips", res.Skips),
		zap.Int("clusters", len(res.Sizes)),
		zap.Uint64("product", res.Product),
	)

	return res, nil
}

// Span walks the sorted edges until one cluster remains and reports the edge
// that completed it.
func (c *Controller) Span() (res SpanResult, err error) {
	start := time.Now()
	defer func() { c.opts.Observer.OnDone(ModeSpan, time.Since(start), err) }()

	if len(c.points) == 1 {
		return SpanResult{}, ErrSinglePoint
	}

	store := clusters.New(len(c.points))
	for i, e := range c.sorted {
		merged, err := c.step(ModeSpan, store, e)
		if err != nil {
			return SpanResult{}, err
		}
		if !merged {
			res.Skips++
			continue
		}
		res.Merges++
		if store.Count() == 1 {
			res.Edge = e
			res.Index = i
			res.Product = uint64(e.A.X) * uint64(e.B.X)

			c.opts.Logger.Info("span walk complete",
				zap.Int("index", i),
				zap.Stringer("from", e.A),
				zap.Stringer("to", e.B),
				zap.Float64("distance", e.Distance()),
				zap.Uint64("product", res.Product),
			)

			return res, nil
		}
	}

	return SpanResult{}, fmt.Errorf("%w: %d clusters remain after %d edges",
		ErrIncompleteSpanning, store.Count(), len(c.sorted))
}

// step applies one edge to store: find both endpoints and merge their clusters
// unless they already coincide. It reports whether a merge happened.
func (c *Controller) step(mode Mode, store *clusters.Store, e edges.Edge) (bool, error) {
	cu, err := store.Find(e.From)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	cv, err := store.Find(e.To)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if cu == cv {
		c.opts.Observer.OnSkip(mode, e)
		return false, nil
	}
	if _, err = store.Merge(cu, cv); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	remaining := store.Count()
	c.opts.Observer.OnMerge(mode, e, remaining)
	if ce := c.opts.Logger.Check(zap.DebugLevel, "merge"); ce != nil {
		ce.Write(
			zap.String("mode", string(mode)),
			zap.Int("from", e.From),
			zap.Int("to", e.To),
			zap.Uint64("squared", e.Squared),
			zap.Int("clusters", remaining),
		)
	}

	return true, nil
}

// TopProduct multiplies the n largest values in sizes. Ranks beyond len(sizes)
// count as 1, so it returns 1 for empty sizes or n <= 0. sizes is not modified.
func TopProduct(sizes []int, n int) uint64 {
	sorted := slices.Clone(sizes)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	product := uint64(1)
	for i := 0; i < n && i < len(sorted); i++ {
		product *= uint64(sorted[i])
	}

	return product
}

// Solve runs both walks on a fresh Controller: Bounded with budget k, then Span.
func Solve(pts []point.Point, k int, opts ...Option) (BoundedResult, SpanResult, error) {
	c, err := New(pts, opts...)
	if err != nil {
		return BoundedResult{}, SpanResult{}, err
	}
	bounded, err := c.Bounded(k)
	if err != nil {
		return BoundedResult{}, SpanResult{}, err
	}
	span, err := c.Span()
	if err != nil {
		return bounded, SpanResult{}, err
	}

	return bounded, span, nil
}
