package spanning_test

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/circuits/edges"
	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/spanning"
)

// loadExample parses testdata/example.txt, the 20-point reference set.
func loadExample(t testing.TB) []point.Point {
	t.Helper()
	raw, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	pts, err := point.ParseAll(string(raw))
	require.NoError(t, err)
	require.Len(t, pts, 20)

	return pts
}

// linePlusFar is the four-point scenario: three unit-spaced points on the
// Z axis and one far corner.
func linePlusFar() []point.Point {
	return []point.Point{
		point.New(0, 0, 0),
		point.New(0, 0, 1),
		point.New(0, 0, 2),
		point.New(10, 10, 10),
	}
}

// randomPoints returns n reproducible points in [0, span)³.
func randomPoints(n int, span int64, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(uint32(r.Int63n(span)), uint32(r.Int63n(span)), uint32(r.Int63n(span)))
	}

	return pts
}

// recorder is an Observer that keeps every event for later inspection.
type recorder struct {
	edges   int
	merges  []int // remaining cluster count after each merge
	skips   int
	done    []spanning.Mode
	doneErr []error
}

func (r *recorder) OnEdges(n int) { r.edges = n }
func (r *recorder) OnMerge(_ spanning.Mode, _ edges.Edge, remaining int) {
	r.merges = append(r.merges, remaining)
}
func (r *recorder) OnSkip(spanning.Mode, edges.Edge) { r.skips++ }
func (r *recorder) OnDone(m spanning.Mode, _ time.Duration, err error) {
	r.done = append(r.done, m)
	r.doneErr = append(r.doneErr, err)
}

func TestExample_Bounded(t *testing.T) {
	c, err := spanning.New(loadExample(t))
	require.NoError(t, err)
	assert.Equal(t, 20, c.Points())
	assert.Len(t, c.Edges(), 190)

	res, err := c.Bounded(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), res.Product)
	assert.Equal(t, 10, res.Edges)
	assert.Equal(t, 9, res.Merges)
	assert.Equal(t, 1, res.Skips)
	assert.Equal(t, []int{5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1}, res.Sizes)
}

func TestExample_Span(t *testing.T) {
	c, err := spanning.New(loadExample(t))
	require.NoError(t, err)

	res, err := c.Span()
	require.NoError(t, err)
	assert.Equal(t, uint64(25272), res.Product)
	assert.Equal(t, point.New(216, 146, 977), res.Edge.A)
	assert.Equal(t, point.New(117, 168, 530), res.Edge.B)
	assert.Equal(t, 28, res.Index)
	assert.Equal(t, 19, res.Merges, "n-1 merges span n points")
	assert.Equal(t, 10, res.Skips)
}

// TestModesAreIndependent runs Span before and after Bounded and expects the
// same answers: each walk uses a fresh cluster store.
func TestModesAreIndependent(t *testing.T) {
	c, err := spanning.New(loadExample(t))
	require.NoError(t, err)

	first, err := c.Span()
	require.NoError(t, err)
	b1, err := c.Bounded(10)
	require.NoError(t, err)
	b2, err := c.Bounded(10)
	require.NoError(t, err)
	second, err := c.Span()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, b1, b2)
}

// TestScenario_LinePlusFar checks the four-point scenario: the first three
// join along the axis before the far point is touched, and the completing
// edge reports 0 × 10.
func TestScenario_LinePlusFar(t *testing.T) {
	c, err := spanning.New(linePlusFar())
	require.NoError(t, err)

	sorted := c.Edges()
	require.Len(t, sorted, 6)
	assert.Equal(t, []float64{1, 1, 2}, []float64{sorted[0].Distance(), sorted[1].Distance(), sorted[2].Distance()})
	for _, e := range sorted[:3] {
		assert.NotEqual(t, 3, e.To, "far point touched too early")
	}

	res, err := c.Span()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Product)
	assert.Equal(t, point.New(0, 0, 2), res.Edge.A)
	assert.Equal(t, point.New(10, 10, 10), res.Edge.B)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, 3, res.Merges)
	assert.Equal(t, 1, res.Skips)
}

// TestBounded_ZeroBudget: no merges, so three singletons multiply to 1.
func TestBounded_ZeroBudget(t *testing.T) {
	c, err := spanning.New(linePlusFar())
	require.NoError(t, err)

	res, err := c.Bounded(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Product)
	assert.Zero(t, res.Merges)
	assert.Equal(t, []int{1, 1, 1, 1}, res.Sizes)
}

// TestBounded_FewerThanThreeClusters treats missing ranks as 1.
func TestBounded_FewerThanThreeClusters(t *testing.T) {
	c, err := spanning.New(linePlusFar())
	require.NoError(t, err)

	// Three edges: two merges and a skip leave {0,1,2} and {3}.
	res, err := c.Bounded(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, res.Sizes)
	assert.Equal(t, uint64(3), res.Product)

	// Budget beyond the edge count walks everything: one cluster of 4.
	res, err = c.Bounded(1000)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Edges)
	assert.Equal(t, []int{4}, res.Sizes)
	assert.Equal(t, uint64(4), res.Product)
}

func TestBounded_NegativeBudget(t *testing.T) {
	c, err := spanning.New(linePlusFar())
	require.NoError(t, err)
	_, err = c.Bounded(-1)
	assert.ErrorIs(t, err, spanning.ErrNegativeBudget)
}

func TestNew_Empty(t *testing.T) {
	_, err := spanning.New(nil)
	assert.ErrorIs(t, err, spanning.ErrEmptyInput)
}

func TestSinglePoint(t *testing.T) {
	c, err := spanning.New([]point.Point{point.New(1, 2, 3)})
	require.NoError(t, err)

	res, err := c.Bounded(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Product)
	assert.Equal(t, []int{1}, res.Sizes)

	_, err = c.Span()
	assert.ErrorIs(t, err, spanning.ErrSinglePoint)
}

func TestTwoPoints(t *testing.T) {
	c, err := spanning.New([]point.Point{point.New(7, 0, 0), point.New(3, 9, 9)})
	require.NoError(t, err)

	res, err := c.Span()
	require.NoError(t, err)
	assert.Equal(t, uint64(21), res.Product)
	assert.Zero(t, res.Index)
}

// TestDuplicatePoints: identical coordinates are separate members joined by a
// zero-length edge, which sorts first.
func TestDuplicatePoints(t *testing.T) {
	pts := []point.Point{point.New(5, 5, 5), point.New(9, 0, 0), point.New(5, 5, 5)}
	c, err := spanning.New(pts)
	require.NoError(t, err)
	assert.Zero(t, c.Edges()[0].Squared)

	res, err := c.Bounded(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Sizes)

	span, err := c.Span()
	require.NoError(t, err)
	assert.Equal(t, 2, span.Merges)
}

// TestObserver_MonotonicCount checks that every merge drops the cluster count
// by exactly one and that skips plus merges account for every walked edge.
func TestObserver_MonotonicCount(t *testing.T) {
	pts := randomPoints(40, 50, 3)
	rec := &recorder{}
	c, err := spanning.New(pts, spanning.WithObserver(rec))
	require.NoError(t, err)
	assert.Equal(t, edges.Count(len(pts)), rec.edges)

	res, err := c.Span()
	require.NoError(t, err)

	require.Len(t, rec.merges, len(pts)-1)
	for i, remaining := range rec.merges {
		assert.Equal(t, len(pts)-1-i, remaining)
	}
	assert.Equal(t, res.Skips, rec.skips)
	assert.Equal(t, res.Index+1, res.Merges+res.Skips)
	assert.Equal(t, []spanning.Mode{spanning.ModeSpan}, rec.done)
	assert.Equal(t, []error{nil}, rec.doneErr)
}

func TestObserver_DoneOnError(t *testing.T) {
	rec := &recorder{}
	c, err := spanning.New([]point.Point{point.New(0, 0, 0)}, spanning.WithObserver(rec))
	require.NoError(t, err)

	_, err = c.Span()
	require.Error(t, err)
	require.Len(t, rec.doneErr, 1)
	assert.ErrorIs(t, rec.doneErr[0], spanning.ErrSinglePoint)
}

// TestWorkers_SameResults verifies parallel generation never changes answers.
func TestWorkers_SameResults(t *testing.T) {
	pts := randomPoints(80, 20, 11) // small span, many ties
	wantB, wantS, err := spanning.Solve(pts, 50)
	require.NoError(t, err)

	for _, w := range []int{0, 2, 7} {
		gotB, gotS, err := spanning.Solve(pts, 50, spanning.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, wantB, gotB, "workers=%d", w)
		assert.Equal(t, wantS, gotS, "workers=%d", w)
	}
}

// TestSpan_MatchesTree: the completing edge is as long as the longest edge
// of any minimum spanning tree.
func TestSpan_MatchesTree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		pts := randomPoints(60, 1000, seed)
		c, err := spanning.New(pts)
		require.NoError(t, err)
		span, err := c.Span()
		require.NoError(t, err)

		tree, _, err := spanning.Tree(pts)
		require.NoError(t, err)
		longest, ok := spanning.LongestEdge(tree)
		require.True(t, ok)
		assert.Equal(t, longest.Squared, span.Edge.Squared, "seed=%d", seed)
	}
}

// TestLogger_Debug checks per-merge debug entries and the summary line.
func TestLogger_Debug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, err := spanning.New(linePlusFar(), spanning.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = c.Span()
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("edges prepared").Len())
	assert.Equal(t, 3, logs.FilterMessage("merge").Len())
	assert.Equal(t, 1, logs.FilterMessage("span walk complete").Len())
}

func TestTopProduct(t *testing.T) {
	assert.Equal(t, uint64(60), spanning.TopProduct([]int{3, 5, 1, 4}, 3))
	assert.Equal(t, uint64(6), spanning.TopProduct([]int{2, 3}, 3))
	assert.Equal(t, uint64(1), spanning.TopProduct(nil, 3))
	assert.Equal(t, uint64(1), spanning.TopProduct([]int{9}, 0))

	in := []int{1, 2, 3}
	spanning.TopProduct(in, 2)
	assert.Equal(t, []int{1, 2, 3}, in, "input must not be reordered")
}

func TestTree(t *testing.T) {
	tree, total, err := spanning.Tree(linePlusFar())
	require.NoError(t, err)
	require.Len(t, tree, 3)
	// 1 + 1 + |(10,10,8)|
	assert.InDelta(t, 2+16.248076809271922, total, 1e-9)

	tree, total, err = spanning.Tree([]point.Point{point.New(1, 1, 1)})
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	_, _, err = spanning.Tree(nil)
	assert.ErrorIs(t, err, spanning.ErrEmptyInput)

	_, ok := spanning.LongestEdge(nil)
	assert.False(t, ok)
}
