// Package trapezoidalmap is the public facade over the seidel package's
// randomized incremental trapezoidal map construction. It owns the
// TrapezoidalMap/SearchDAG arena pair and the dataset backing them, and
// converts the core's panics into ordinary errors at this boundary, the way
// the original triangulate package's top-level Triangulate function does
// for its own core.
package trapezoidalmap

import (
	"github.com/simoseu/trapezoidalmap/dataset"
	"github.com/simoseu/trapezoidalmap/geometry"
	"github.com/simoseu/trapezoidalmap/internal/fail"
	"github.com/simoseu/trapezoidalmap/seidel"
)

// Builder owns one trapezoidal map build. It is not safe for concurrent
// use, and once Insert has been called it must not be re-entered from
// another goroutine while in progress.
type Builder struct {
	tmap    *seidel.TrapezoidalMap
	dag     *seidel.SearchDAG
	dataset *dataset.TrapezoidalMapDataset
}

// NewBuilder returns a Builder initialized to a single bounding trapezoid,
// ready to accept segments via Insert.
func NewBuilder() *Builder {
	b := &Builder{
		tmap:    seidel.NewTrapezoidalMap(),
		dag:     seidel.NewSearchDAG(),
		dataset: dataset.New(),
	}
	seidel.InitializeStructures(b.tmap, b.dag)
	return b
}

// Insert adds segment to the map. Both endpoints must lie strictly inside
// [-seidel.BoundingBox, seidel.BoundingBox] in both axes, and segment must
// not cross any segment already inserted (shared endpoints are fine).
// Insert recovers any internal invariant violation and reports it as an
// error rather than letting it propagate as a panic.
func (b *Builder) Insert(segment geometry.Segment) (err error) {
	defer func() { err = fail.Recover(recover()) }()

	segIdx := b.dataset.RegisterSegment(segment)
	seidel.BuildTrapezoidalMap(b.tmap, b.dag, b.dataset, segIdx)
	return nil
}

// Locate returns the trapezoid containing point as a Trapezoid value, for
// callers that want the full boundary rather than just its arena index.
func (b *Builder) Locate(point geometry.Point) (seidel.Trapezoid, error) {
	var result seidel.Trapezoid
	err := func() (err error) {
		defer func() { err = fail.Recover(recover()) }()
		idx := seidel.QueryPoint(b.dag, b.dataset, point)
		result = b.tmap.Get(idx)
		return nil
	}()
	return result, err
}

// NumTrapezoids reports how many trapezoids the current map holds.
func (b *Builder) NumTrapezoids() int {
	return b.tmap.NumTrapezoids()
}

// NumSegments reports how many distinct segments have been passed to
// Insert. A segment is counted once it is registered, before it is built
// into the map, so one whose Insert returned an error is counted too.
func (b *Builder) NumSegments() int {
	return b.dataset.NumSegments()
}
