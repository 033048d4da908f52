package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoseu/trapezoidalmap/geometry"
)

// fakeDataset is a minimal seidel.Dataset backed by plain slices/maps, so
// these tests don't need to import package dataset (which itself depends
// on seidel).
type fakeDataset struct {
	points   []geometry.Point
	pointIdx map[geometry.Point]Index
	segments []geometry.Segment
}

func newFakeDataset() *fakeDataset {
	return &fakeDataset{pointIdx: make(map[geometry.Point]Index)}
}

func (d *fakeDataset) registerPoint(p geometry.Point) Index {
	if idx, ok := d.pointIdx[p]; ok {
		return idx
	}
	idx := Index(len(d.points))
	d.points = append(d.points, p)
	d.pointIdx[p] = idx
	return idx
}

func (d *fakeDataset) registerSegment(s geometry.Segment) Index {
	ordered := s.Ordered()
	d.registerPoint(ordered.P1)
	d.registerPoint(ordered.P2)
	idx := Index(len(d.segments))
	d.segments = append(d.segments, ordered)
	return idx
}

func (d *fakeDataset) GetPoint(idx Index) geometry.Point     { return d.points[idx] }
func (d *fakeDataset) GetSegment(idx Index) geometry.Segment { return d.segments[idx] }

func (d *fakeDataset) FindPoint(p geometry.Point) (Index, bool) {
	idx, ok := d.pointIdx[p]
	return idx, ok
}

func (d *fakeDataset) FindSegment(s geometry.Segment) (Index, bool) {
	ordered := s.Ordered()
	for i, got := range d.segments {
		if got == ordered {
			return Index(i), true
		}
	}
	return NilIndex, false
}

// validateTrapezoidalMap walks every trapezoid and DAG leaf, checking that:
//   - every neighbor field is either NilIndex or a valid trapezoid index
//   - every leaf's trapezoid index points back at a trapezoid whose own
//     NodeIdx names that same leaf
//   - a neighbor relationship is reciprocal in at least one of the
//     neighbor's own four fields
func validateTrapezoidalMap(t *testing.T, tmap *TrapezoidalMap, dag *SearchDAG) {
	t.Helper()
	n := tmap.NumTrapezoids()
	validIdx := func(idx Index) bool {
		return idx == NilIndex || int(idx) < n
	}
	for i := 0; i < n; i++ {
		trap := tmap.Get(Index(i))
		assert.True(t, validIdx(trap.UpperLeftN), "trapezoid %d has invalid UpperLeftN", i)
		assert.True(t, validIdx(trap.LowerLeftN), "trapezoid %d has invalid LowerLeftN", i)
		assert.True(t, validIdx(trap.UpperRightN), "trapezoid %d has invalid UpperRightN", i)
		assert.True(t, validIdx(trap.LowerRightN), "trapezoid %d has invalid LowerRightN", i)
		require.Less(t, int(trap.NodeIdx), dag.NumNodes(), "trapezoid %d has invalid NodeIdx", i)
		leaf := dag.Node(trap.NodeIdx)
		assert.Equal(t, NodeLeaf, leaf.Kind, "trapezoid %d's NodeIdx does not name a leaf", i)
		assert.EqualValues(t, i, leaf.Idx, "trapezoid %d's leaf points at a different trapezoid", i)

		for _, neighborIdx := range []Index{trap.UpperRightN, trap.LowerRightN} {
			if neighborIdx == NilIndex {
				continue
			}
			neighbor := tmap.Get(neighborIdx)
			reciprocal := neighbor.UpperLeftN == Index(i) || neighbor.LowerLeftN == Index(i)
			assert.True(t, reciprocal, "trapezoid %d's right neighbor %d does not point back", i, neighborIdx)
		}
	}
}

func TestInitializeStructures(t *testing.T) {
	tmap := NewTrapezoidalMap()
	dag := NewSearchDAG()
	InitializeStructures(tmap, dag)

	require.Equal(t, 1, tmap.NumTrapezoids())
	require.Equal(t, 1, dag.NumNodes())

	root := dag.Node(dag.Root())
	assert.Equal(t, NodeLeaf, root.Kind)
	assert.EqualValues(t, 0, root.Idx)

	trap := tmap.Get(0)
	assert.Equal(t, NilIndex, trap.UpperLeftN)
	assert.Equal(t, NilIndex, trap.LowerLeftN)
	assert.Equal(t, NilIndex, trap.UpperRightN)
	assert.Equal(t, NilIndex, trap.LowerRightN)
}

func TestBuildTrapezoidalMap_SingleSegment(t *testing.T) {
	tmap := NewTrapezoidalMap()
	dag := NewSearchDAG()
	InitializeStructures(tmap, dag)

	ds := newFakeDataset()
	seg := geometry.Segment{P1: geometry.Point{X: -1, Y: 0}, P2: geometry.Point{X: 1, Y: 0}}
	segIdx := ds.registerSegment(seg)

	BuildTrapezoidalMap(tmap, dag, ds, segIdx)

	// A single segment entirely inside the bounding box splits the one
	// trapezoid into four: left cap, right cap, above, below.
	assert.Equal(t, 4, tmap.NumTrapezoids())
	validateTrapezoidalMap(t, tmap, dag)

	above := QueryPoint(dag, ds, geometry.Point{X: 0, Y: 1})
	below := QueryPoint(dag, ds, geometry.Point{X: 0, Y: -1})
	assert.NotEqual(t, above, below)

	left := QueryPoint(dag, ds, geometry.Point{X: -100, Y: 0})
	right := QueryPoint(dag, ds, geometry.Point{X: 100, Y: 0})
	assert.NotEqual(t, left, right)
	assert.NotEqual(t, left, above)
	assert.NotEqual(t, left, below)
}

func TestBuildTrapezoidalMap_SegmentSpanningBoundingBox(t *testing.T) {
	tmap := NewTrapezoidalMap()
	dag := NewSearchDAG()
	InitializeStructures(tmap, dag)

	ds := newFakeDataset()
	seg := geometry.Segment{P1: geometry.Point{X: -BoundingBox, Y: 0}, P2: geometry.Point{X: BoundingBox, Y: 0}}
	segIdx := ds.registerSegment(seg)

	BuildTrapezoidalMap(tmap, dag, ds, segIdx)

	// Endpoints coincide with the bounding trapezoid's own left and right
	// points, so no caps are created: just an above and a below trapezoid.
	assert.Equal(t, 2, tmap.NumTrapezoids())
	validateTrapezoidalMap(t, tmap, dag)

	above := QueryPoint(dag, ds, geometry.Point{X: 0, Y: 1})
	below := QueryPoint(dag, ds, geometry.Point{X: 0, Y: -1})
	assert.NotEqual(t, above, below)
}

func TestBuildTrapezoidalMap_TwoNonCrossingSegments(t *testing.T) {
	tmap := NewTrapezoidalMap()
	dag := NewSearchDAG()
	InitializeStructures(tmap, dag)

	ds := newFakeDataset()
	segA := geometry.Segment{P1: geometry.Point{X: -5, Y: 0}, P2: geometry.Point{X: 5, Y: 0}}
	segB := geometry.Segment{P1: geometry.Point{X: -5, Y: 5}, P2: geometry.Point{X: 5, Y: 5}}

	idxA := ds.registerSegment(segA)
	BuildTrapezoidalMap(tmap, dag, ds, idxA)
	idxB := ds.registerSegment(segB)
	BuildTrapezoidalMap(tmap, dag, ds, idxB)

	validateTrapezoidalMap(t, tmap, dag)

	belowA := QueryPoint(dag, ds, geometry.Point{X: 0, Y: -1})
	betweenAB := QueryPoint(dag, ds, geometry.Point{X: 0, Y: 1})
	aboveB := QueryPoint(dag, ds, geometry.Point{X: 0, Y: 10})
	assert.NotEqual(t, belowA, betweenAB)
	assert.NotEqual(t, betweenAB, aboveB)
	assert.NotEqual(t, belowA, aboveB)
}

func TestBuildTrapezoidalMap_MultiTrapezoidChain(t *testing.T) {
	tmap := NewTrapezoidalMap()
	dag := NewSearchDAG()
	InitializeStructures(tmap, dag)

	ds := newFakeDataset()

	// Three short, steeply-sloped (but not vertical — a vertical segment is
	// a fatal precondition violation, see TestFollowSegment_RequiresAscendingSegment)
	// separators, each sitting well clear of where the long diagonal below
	// will pass: two above it, one below, so neither set crosses the other.
	// Each still carves a near-vertical wall the long segment's arena index
	// sweep must walk straight through, restarting first the top strip (for
	// the separators sitting above) and then the bottom strip (for the one
	// sitting below) without ever reaching the box's own left/right edges —
	// exactly the internal (non-outer) restart moreIntersectedTrapezoids
	// must carry both left-neighbor fields through correctly.
	separators := []geometry.Segment{
		{P1: geometry.Point{X: -6.01, Y: 4}, P2: geometry.Point{X: -5.99, Y: 6}},
		{P1: geometry.Point{X: -0.01, Y: -6}, P2: geometry.Point{X: 0.01, Y: -4}},
		{P1: geometry.Point{X: 5.99, Y: 4}, P2: geometry.Point{X: 6.01, Y: 6}},
	}
	for _, sep := range separators {
		idx := ds.registerSegment(sep)
		BuildTrapezoidalMap(tmap, dag, ds, idx)
	}
	validateTrapezoidalMap(t, tmap, dag)

	long := geometry.Segment{P1: geometry.Point{X: -8, Y: 1}, P2: geometry.Point{X: 8, Y: -1}}
	idx := ds.registerSegment(long)
	BuildTrapezoidalMap(tmap, dag, ds, idx)

	validateTrapezoidalMap(t, tmap, dag)

	above := QueryPoint(dag, ds, geometry.Point{X: -7, Y: 5})
	below := QueryPoint(dag, ds, geometry.Point{X: -7, Y: -5})
	assert.NotEqual(t, above, below)
}

func TestFollowSegment_RequiresAscendingSegment(t *testing.T) {
	cases := map[string]geometry.Segment{
		"descending": {P1: geometry.Point{X: 1, Y: 0}, P2: geometry.Point{X: -1, Y: 0}},
		// A vertical segment (P1.X == P2.X) is not strictly ascending either:
		// spec.md §4.7 requires P1.X < P2.X, and a vertical segment is a fatal
		// precondition violation, not a silently-accepted edge case.
		"vertical": {P1: geometry.Point{X: 0, Y: -1}, P2: geometry.Point{X: 0, Y: 1}},
	}
	for name, seg := range cases {
		t.Run(name, func(t *testing.T) {
			tmap := NewTrapezoidalMap()
			dag := NewSearchDAG()
			InitializeStructures(tmap, dag)
			ds := newFakeDataset()

			assert.Panics(t, func() {
				FollowSegment(tmap, dag, ds, seg)
			})
		})
	}
}
