package spanning

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/circuits/edges"
)

// Sentinel errors for spanning runs.
var (
	// ErrEmptyInput indicates a controller was requested for zero points.
	ErrEmptyInput = errors.New("spanning: no points")

	// ErrNegativeBudget indicates Bounded was called with a negative edge budget.
	ErrNegativeBudget = errors.New("spanning: negative edge budget")

	// ErrSinglePoint indicates Span on one point, which no edge can complete.
	ErrSinglePoint = errors.New("spanning: single point has no completing edge")

	// ErrIncompleteSpanning indicates the sorted edges ran out before one cluster remained.
	ErrIncompleteSpanning = errors.New("spanning: edges exhausted before full connectivity")

	// ErrInvariant indicates the cluster store rejected an operation the walk relies on.
	ErrInvariant = errors.New("spanning: cluster invariant violated")
)

// Mode names a walk over the sorted edges.
type Mode string

const (
	// ModeBounded walks a fixed prefix of the sorted edges.
	ModeBounded Mode = "bounded"

	// ModeSpan walks until a single cluster remains.
	ModeSpan Mode = "span"
)

// TopRanks is how many of the largest clusters Bounded multiplies.
const TopRanks = 3

// Observer receives progress events from a Controller. Calls happen on the
// goroutine running the walk.
type Observer interface {
	// OnEdges is called once by New with the number of sorted edges.
	OnEdges(n int)

	// OnMerge is called after e joined two clusters; remaining is the new cluster count.
	OnMerge(mode Mode, e edges.Edge, remaining int)

	// OnSkip is called when both endpoints of e already shared a cluster.
	OnSkip(mode Mode, e edges.Edge)

	// OnDone is called when a walk finishes, successfully or not.
	OnDone(mode Mode, elapsed time.Duration, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnEdges(int)                       {}
func (NopObserver) OnMerge(Mode, edges.Edge, int)     {}
func (NopObserver) OnSkip(Mode, edges.Edge)           {}
func (NopObserver) OnDone(Mode, time.Duration, error) {}

// Options configures a Controller. Use DefaultOptions and Option helpers.
type Options struct {
	// Workers is the edge generation parallelism; 1 generates serially,
	// 0 or less uses GOMAXPROCS. Output never depends on it.
	Workers int

	// Logger receives run summaries at Info and per-edge events at Debug.
	Logger *zap.Logger

	// Observer receives progress events.
	Observer Observer

	// Context bounds edge generation.
	Context context.Context
}

// Option modifies Options.
type Option func(*Options)

// WithWorkers sets the edge generation parallelism.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithObserver sets the progress observer; nil restores NopObserver.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.Observer = obs
	}
}

// WithContext sets the context used while generating edges.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.Context = ctx
	}
}

// DefaultOptions returns serial generation, a no-op logger and observer, and
// a background context.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Logger:   zap.NewNop(),
		Observer: NopObserver{},
		Context:  context.Background(),
	}
}

// BoundedResult is the outcome of a bounded walk.
type BoundedResult struct {
	// Edges is how many sorted edges were walked: min(k, total).
	Edges int

	// Merges and Skips split Edges by outcome.
	Merges, Skips int

	// Sizes holds every cluster size, largest first.
	Sizes []int

	// Product is the product of the TopRanks largest sizes.
	Product uint64
}

// SpanResult is the outcome of a span walk.
type SpanResult struct {
	// Edge is the edge whose merge left a single cluster.
	Edge edges.Edge

	// Index is Edge's position in the sorted order.
	Index int

	// Merges and Skips count outcomes up to and including Edge.
	Merges, Skips int

	// Product is Edge.A.X × Edge.B.X.
	Product uint64
}
