package seidel

import "github.com/simoseu/trapezoidalmap/geometry"

// Dataset is the minimal contract the core relies on for mapping points and
// segments to stable indices and back. A concrete implementation (see
// package dataset) is responsible for registering a segment's endpoints
// before BuildTrapezoidalMap is called with it; the core only ever reads.
type Dataset interface {
	GetPoint(idx Index) geometry.Point
	GetSegment(idx Index) geometry.Segment
	FindPoint(p geometry.Point) (idx Index, found bool)
	FindSegment(s geometry.Segment) (idx Index, found bool)
}
