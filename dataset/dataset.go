// Package dataset supplies the concrete point/segment registry the seidel
// package's Dataset interface describes. In the original source this role
// was played by a dedicated geometry-library container; here it is a small,
// self-contained index over value-typed points and segments.
package dataset

import (
	"github.com/simoseu/trapezoidalmap/geometry"
	"github.com/simoseu/trapezoidalmap/internal/fail"
	"github.com/simoseu/trapezoidalmap/seidel"
)

// TrapezoidalMapDataset registers the points and segments a trapezoidal map
// build needs to reference by stable index. It is not safe for concurrent
// use, matching seidel's own single-threaded contract.
type TrapezoidalMapDataset struct {
	points   []geometry.Point
	pointIdx map[geometry.Point]seidel.Index

	segments   []geometry.Segment
	segmentIdx map[geometry.Segment]seidel.Index
}

// New returns an empty dataset.
func New() *TrapezoidalMapDataset {
	return &TrapezoidalMapDataset{
		pointIdx:   make(map[geometry.Point]seidel.Index),
		segmentIdx: make(map[geometry.Segment]seidel.Index),
	}
}

// RegisterPoint returns p's stable index, allocating one if p hasn't been
// seen before.
func (d *TrapezoidalMapDataset) RegisterPoint(p geometry.Point) seidel.Index {
	if idx, ok := d.pointIdx[p]; ok {
		return idx
	}
	idx := seidel.Index(len(d.points))
	d.points = append(d.points, p)
	d.pointIdx[p] = idx
	return idx
}

// RegisterSegment registers segment's endpoints and the segment itself
// (under its x-ascending ordering, so a segment and its endpoint-swapped
// twin always resolve to the same index), returning the segment's stable
// index.
func (d *TrapezoidalMapDataset) RegisterSegment(s geometry.Segment) seidel.Index {
	ordered := s.Ordered()
	d.RegisterPoint(ordered.P1)
	d.RegisterPoint(ordered.P2)
	if idx, ok := d.segmentIdx[ordered]; ok {
		return idx
	}
	idx := seidel.Index(len(d.segments))
	d.segments = append(d.segments, ordered)
	d.segmentIdx[ordered] = idx
	return idx
}

// GetPoint implements seidel.Dataset.
func (d *TrapezoidalMapDataset) GetPoint(idx seidel.Index) geometry.Point {
	fail.Assert(int(idx) < len(d.points), "dataset: point index %d out of range", idx)
	return d.points[idx]
}

// GetSegment implements seidel.Dataset.
func (d *TrapezoidalMapDataset) GetSegment(idx seidel.Index) geometry.Segment {
	fail.Assert(int(idx) < len(d.segments), "dataset: segment index %d out of range", idx)
	return d.segments[idx]
}

// FindPoint implements seidel.Dataset.
func (d *TrapezoidalMapDataset) FindPoint(p geometry.Point) (seidel.Index, bool) {
	idx, ok := d.pointIdx[p]
	return idx, ok
}

// FindSegment implements seidel.Dataset.
func (d *TrapezoidalMapDataset) FindSegment(s geometry.Segment) (seidel.Index, bool) {
	idx, ok := d.segmentIdx[s.Ordered()]
	return idx, ok
}

// NumPoints reports how many distinct points have been registered.
func (d *TrapezoidalMapDataset) NumPoints() int {
	return len(d.points)
}

// NumSegments reports how many distinct segments have been registered.
func (d *TrapezoidalMapDataset) NumSegments() int {
	return len(d.segments)
}
