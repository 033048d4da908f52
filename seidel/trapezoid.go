package seidel

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/simoseu/trapezoidalmap/dbg"
	"github.com/simoseu/trapezoidalmap/geometry"
)

// Trapezoid is a single cell of the subdivision. TopSeg and BottomSeg bound
// it vertically; LeftPt and RightPt bound it horizontally. The four neighbor
// fields point at the (up to) four trapezoids sharing a vertical edge with
// this one, and NodeIdx names the SearchDAG leaf whose Idx is this
// trapezoid's own arena index — the two arenas stay in lockstep by mutual
// reference rather than by a shared object graph.
//
// Invariants (I1-I5 in the originating design): every neighbor field is
// either NilIndex or a valid Trapezoid index; TopSeg lies weakly above
// BottomSeg across [LeftPt.X, RightPt.X]; LeftPt.X <= RightPt.X; and a
// neighbor relationship is reciprocal (if A's UpperRightN is B, then B's
// UpperLeftN or LowerLeftN is A) once BuildTrapezoidalMap returns.
type Trapezoid struct {
	TopSeg, BottomSeg geometry.Segment
	LeftPt, RightPt   geometry.Point

	UpperLeftN  Index
	LowerLeftN  Index
	UpperRightN Index
	LowerRightN Index

	NodeIdx Index
}

func newTrapezoid(top, bottom geometry.Segment, left, right geometry.Point) Trapezoid {
	return Trapezoid{
		TopSeg: top, BottomSeg: bottom,
		LeftPt: left, RightPt: right,
		UpperLeftN: NilIndex, LowerLeftN: NilIndex,
		UpperRightN: NilIndex, LowerRightN: NilIndex,
		NodeIdx: NilIndex,
	}
}

// leftPointMatchesTop reports whether the trapezoid's left point coincides
// exactly with the top segment's left (ordered) endpoint. Endpoint
// coincidence is always tested with ==, never the orientation predicate.
func (t Trapezoid) leftPointMatchesTop() bool {
	return t.LeftPt == t.TopSeg.Ordered().P1
}

// rightPointMatchesTop reports whether the trapezoid's right point
// coincides exactly with the top segment's right (ordered) endpoint.
func (t Trapezoid) rightPointMatchesTop() bool {
	return t.RightPt == t.TopSeg.Ordered().P2
}

// leftPointMatchesBottom reports whether the trapezoid's left point
// coincides exactly with the bottom segment's left (ordered) endpoint.
func (t Trapezoid) leftPointMatchesBottom() bool {
	return t.LeftPt == t.BottomSeg.Ordered().P1
}

// rightPointMatchesBottom reports whether the trapezoid's right point
// coincides exactly with the bottom segment's right (ordered) endpoint.
func (t Trapezoid) rightPointMatchesBottom() bool {
	return t.RightPt == t.BottomSeg.Ordered().P2
}

// dbgName returns t's readable debug name (keyed by its DAG leaf, the one
// stable identifier a Trapezoid value carries), colored by what kind of
// trapezoid it is: cyan if any of its four neighbor fields is NilIndex, else
// red if its left and right points coincide, green otherwise.
func (t Trapezoid) dbgName() string {
	name := dbg.Name("trapezoid", t.NodeIdx, NilIndex)
	switch {
	case t.UpperLeftN == NilIndex || t.LowerLeftN == NilIndex || t.UpperRightN == NilIndex || t.LowerRightN == NilIndex:
		name = aurora.Cyan(name).String()
	case t.LeftPt == t.RightPt:
		name = aurora.Red(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// String renders t for debug logging: its colored name plus its four
// boundary references.
func (t Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid %s { top: %v, bottom: %v } <L: %v, R: %v>",
		t.dbgName(),
		t.TopSeg, t.BottomSeg,
		t.LeftPt, t.RightPt,
	)
}
