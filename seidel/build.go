package seidel

import (
	"github.com/simoseu/trapezoidalmap/geometry"
	"github.com/simoseu/trapezoidalmap/internal/fail"
)

// InitializeStructures resets tmap and dag to the starting state: a single
// trapezoid covering [-BoundingBox, BoundingBox] in both axes, and a DAG
// whose root is a single leaf naming it. Every segment inserted afterward
// must have both endpoints strictly inside that square.
func InitializeStructures(tmap *TrapezoidalMap, dag *SearchDAG) {
	tmap.Clear()
	dag.Clear()

	top := geometry.Segment{
		P1: geometry.Point{X: -BoundingBox, Y: BoundingBox},
		P2: geometry.Point{X: BoundingBox, Y: BoundingBox},
	}
	bottom := geometry.Segment{
		P1: geometry.Point{X: -BoundingBox, Y: -BoundingBox},
		P2: geometry.Point{X: BoundingBox, Y: -BoundingBox},
	}
	left := geometry.Point{X: -BoundingBox, Y: 0}
	right := geometry.Point{X: BoundingBox, Y: 0}

	trapIdx := tmap.Add(newTrapezoid(top, bottom, left, right))
	nodeIdx := dag.AddNode(leafNode(trapIdx))
	dag.SetRoot(nodeIdx)

	trap := tmap.Get(trapIdx)
	trap.NodeIdx = nodeIdx
	tmap.Replace(trapIdx, trap)
}

// BuildTrapezoidalMap inserts the dataset segment named by segIdx into the
// trapezoidal map and search DAG, maintaining every invariant the two
// arenas share. The segment's endpoints must already be registered with
// dataset (see package dataset); the segment itself need not be pre-sorted,
// BuildTrapezoidalMap orders it internally.
func BuildTrapezoidalMap(tmap *TrapezoidalMap, dag *SearchDAG, dataset Dataset, segIdx Index) {
	segment := dataset.GetSegment(segIdx).Ordered()

	p1Idx, found := dataset.FindPoint(segment.P1)
	fail.Assert(found, "seidel: BuildTrapezoidalMap: segment's left endpoint is not registered")
	p2Idx, found := dataset.FindPoint(segment.P2)
	fail.Assert(found, "seidel: BuildTrapezoidalMap: segment's right endpoint is not registered")

	path := FollowSegment(tmap, dag, dataset, segment)
	fail.Assert(len(path) > 0, "seidel: FollowSegment returned an empty path")

	if len(path) == 1 {
		oneIntersectedTrapezoid(tmap, dag, segIdx, segment, p1Idx, p2Idx, path[0])
		return
	}
	moreIntersectedTrapezoids(tmap, dag, segIdx, segment, p1Idx, p2Idx, path)
}

// fixupNeighbor repoints every one of neighborIdx's four neighbor fields
// that currently names oldIdx so that it names newIdx instead. A neighbor
// is only ever touched at the single corner it shared with oldIdx, so at
// most one field changes in practice, but every field is checked since a
// degenerate zero-height trapezoid can touch a corner from two sides.
func fixupNeighbor(tmap *TrapezoidalMap, neighborIdx, oldIdx, newIdx Index) {
	if neighborIdx == NilIndex {
		return
	}
	n := tmap.Get(neighborIdx)
	changed := false
	if n.UpperLeftN == oldIdx {
		n.UpperLeftN = newIdx
		changed = true
	}
	if n.LowerLeftN == oldIdx {
		n.LowerLeftN = newIdx
		changed = true
	}
	if n.UpperRightN == oldIdx {
		n.UpperRightN = newIdx
		changed = true
	}
	if n.LowerRightN == oldIdx {
		n.LowerRightN = newIdx
		changed = true
	}
	if changed {
		tmap.Replace(neighborIdx, n)
	}
}

// oneIntersectedTrapezoid handles the case where segment lies entirely
// within a single existing trapezoid. It splits that trapezoid into up to
// four pieces — an optional left cap, a top piece (above segment), a
// bottom piece (below segment), and an optional right cap — and rewrites
// the DAG leaf at trapIdx into the matching X/X/Y subtree.
func oneIntersectedTrapezoid(tmap *TrapezoidalMap, dag *SearchDAG, segIdx Index, segment geometry.Segment, p1Idx, p2Idx Index, trapIdx Index) {
	trap := tmap.Get(trapIdx)
	p1, p2 := segment.P1, segment.P2

	leftExists := p1 != trap.LeftPt
	rightExists := p2 != trap.RightPt

	bottomIdx := tmap.Add(Trapezoid{})
	var leftIdx, rightIdx Index = NilIndex, NilIndex
	if leftExists {
		leftIdx = tmap.Add(Trapezoid{})
	}
	if rightExists {
		rightIdx = tmap.Add(Trapezoid{})
	}
	topIdx := trapIdx

	topLeftPt, bottomLeftPt := p1, p1
	if !leftExists {
		topLeftPt, bottomLeftPt = trap.LeftPt, trap.LeftPt
	}
	topRightPt, bottomRightPt := p2, p2
	if !rightExists {
		topRightPt, bottomRightPt = trap.RightPt, trap.RightPt
	}

	top := newTrapezoid(trap.TopSeg, segment, topLeftPt, topRightPt)
	bottom := newTrapezoid(segment, trap.BottomSeg, bottomLeftPt, bottomRightPt)

	if leftExists {
		top.UpperLeftN, top.LowerLeftN = leftIdx, NilIndex
		bottom.UpperLeftN, bottom.LowerLeftN = NilIndex, leftIdx
	} else {
		if !trap.leftPointMatchesTop() {
			top.UpperLeftN = trap.UpperLeftN
		}
		if !trap.leftPointMatchesBottom() {
			bottom.LowerLeftN = trap.LowerLeftN
		}
	}
	if rightExists {
		top.UpperRightN, top.LowerRightN = rightIdx, NilIndex
		bottom.UpperRightN, bottom.LowerRightN = NilIndex, rightIdx
	} else {
		if !trap.rightPointMatchesTop() {
			top.UpperRightN = trap.UpperRightN
		}
		if !trap.rightPointMatchesBottom() {
			bottom.LowerRightN = trap.LowerRightN
		}
	}

	var left, right Trapezoid
	if leftExists {
		left = newTrapezoid(trap.TopSeg, trap.BottomSeg, trap.LeftPt, p1)
		left.UpperLeftN, left.LowerLeftN = trap.UpperLeftN, trap.LowerLeftN
		left.UpperRightN, left.LowerRightN = topIdx, bottomIdx
	}
	if rightExists {
		right = newTrapezoid(trap.TopSeg, trap.BottomSeg, p2, trap.RightPt)
		right.UpperLeftN, right.LowerLeftN = topIdx, bottomIdx
		right.UpperRightN, right.LowerRightN = trap.UpperRightN, trap.LowerRightN
	}

	if leftExists {
		fixupNeighbor(tmap, trap.UpperLeftN, trapIdx, leftIdx)
		fixupNeighbor(tmap, trap.LowerLeftN, trapIdx, leftIdx)
	} else {
		fixupNeighbor(tmap, trap.UpperLeftN, trapIdx, topIdx)
		fixupNeighbor(tmap, trap.LowerLeftN, trapIdx, bottomIdx)
	}
	if rightExists {
		fixupNeighbor(tmap, trap.UpperRightN, trapIdx, rightIdx)
		fixupNeighbor(tmap, trap.LowerRightN, trapIdx, rightIdx)
	} else {
		fixupNeighbor(tmap, trap.UpperRightN, trapIdx, topIdx)
		fixupNeighbor(tmap, trap.LowerRightN, trapIdx, bottomIdx)
	}

	leafTop := dag.AddNode(SearchNode{})
	leafBottom := dag.AddNode(SearchNode{})
	top.NodeIdx = leafTop
	bottom.NodeIdx = leafBottom
	dag.ReplaceNode(leafTop, leafNode(topIdx))
	dag.ReplaceNode(leafBottom, leafNode(bottomIdx))

	root := trap.NodeIdx
	yNodeVal := yNode(segIdx, leafTop, leafBottom)
	if !leftExists && !rightExists {
		dag.ReplaceNode(root, yNodeVal)
	} else {
		yIdx := dag.AddNode(yNodeVal)
		next := yIdx
		if rightExists {
			leafRight := dag.AddNode(leafNode(rightIdx))
			right.NodeIdx = leafRight
			if leftExists {
				next = dag.AddNode(xNode(p2Idx, next, leafRight))
			} else {
				dag.ReplaceNode(root, xNode(p2Idx, next, leafRight))
				next = root
			}
		}
		if leftExists {
			leafLeft := dag.AddNode(leafNode(leftIdx))
			left.NodeIdx = leafLeft
			dag.ReplaceNode(root, xNode(p1Idx, leafLeft, next))
		}
	}

	tmap.Replace(topIdx, top)
	tmap.Replace(bottomIdx, bottom)
	if leftExists {
		tmap.Replace(leftIdx, left)
	}
	if rightExists {
		tmap.Replace(rightIdx, right)
	}
}

// strip tracks one of the two (top or bottom) chains of trapezoids being
// built along segment as moreIntersectedTrapezoids sweeps left to right.
// idx and leaf are fixed from the moment the strip last (re)started until
// it next closes out: every trapezoid the strip passes through meanwhile
// shares that same leaf, which is how a single strip leaf ends up named by
// more than one Y-node.
//
// sameSideLeftN and otherSideLeftN are computed once, whenever the strip
// (re)starts, and carried unchanged into whatever trapezoid close()
// eventually writes: sameSideLeftN is this strip's own-side left-neighbor
// field (UpperLeftN for the top strip, LowerLeftN for the bottom strip),
// and otherSideLeftN is the opposite corner, used only to reciprocally link
// back to the previous instance of this same strip on a restart.
type strip struct {
	idx    Index
	leaf   Index
	leftPt geometry.Point
	source Trapezoid // the path trapezoid this strip's bounding segment is carved from, since last start

	sameSideLeftN  Index
	otherSideLeftN Index
}

// close finalizes the strip's pending trapezoid with the given right edge
// and writes it into its reserved slot (never allocating a new one: idx
// and leaf were fixed when the strip last started or restarted).
func (s *strip) close(tmap *TrapezoidalMap, top bool, segment geometry.Segment, rightPt geometry.Point, upperRightN, lowerRightN Index) {
	var trap Trapezoid
	if top {
		trap = newTrapezoid(s.source.TopSeg, segment, s.leftPt, rightPt)
		trap.UpperLeftN, trap.LowerLeftN = s.sameSideLeftN, s.otherSideLeftN
	} else {
		trap = newTrapezoid(segment, s.source.BottomSeg, s.leftPt, rightPt)
		trap.LowerLeftN, trap.UpperLeftN = s.sameSideLeftN, s.otherSideLeftN
	}
	trap.UpperRightN, trap.LowerRightN = upperRightN, lowerRightN
	trap.NodeIdx = s.leaf
	tmap.Replace(s.idx, trap)
}

// start begins the strip at segment's own left endpoint — the only point
// where the strip has no previous instance of itself to reciprocally link
// back to, so otherSideLeftN is always NilIndex here. leftExists/leftIdx
// mirror oneIntersectedTrapezoid's left-cap handling: when a left cap was
// carved out, the strip's own-side neighbor is that cap; otherwise it is
// inherited from source's own matching neighbor, unless source's left
// corner coincides with that boundary segment's own endpoint (the strip then
// has no neighbor on that side).
func (s *strip) start(dag *SearchDAG, source Trapezoid, trapIdx Index, leftPt geometry.Point, top, leftExists bool, leftIdx Index) {
	s.idx = trapIdx
	s.leaf = dag.AddNode(leafNode(trapIdx))
	s.leftPt = leftPt
	s.source = source
	s.otherSideLeftN = NilIndex

	switch {
	case leftExists:
		s.sameSideLeftN = leftIdx
	case top && leftPt != source.TopSeg.Ordered().P1:
		s.sameSideLeftN = source.UpperLeftN
	case !top && leftPt != source.BottomSeg.Ordered().P1:
		s.sameSideLeftN = source.LowerLeftN
	default:
		s.sameSideLeftN = NilIndex
	}
}

// restart ends the strip's previous instance (already written out by a
// preceding close call) and begins a fresh one carved out of source, the
// path trapezoid whose own left corner forced this strip to end and a new
// one to begin. Unlike start, this left corner is always a pre-existing
// vertex of the subdivision — source's own left corner — so the strip's
// own-side neighbor is inherited from source unconditionally, and the
// opposite corner reciprocally links back to the just-closed previous
// instance of this same strip, matching the reference implementation's
// moreIntersectedTrapezoids (the `previousTopTrapIdx`/`previousBottomTrapIdx`
// bookkeeping): every restart sets both left-neighbor fields, not only the
// strip's very first segment.
func (s *strip) restart(dag *SearchDAG, source Trapezoid, trapIdx Index, leftPt geometry.Point, top bool) {
	previousIdx := s.idx
	s.idx = trapIdx
	s.leaf = dag.AddNode(leafNode(trapIdx))
	s.leftPt = leftPt
	s.source = source
	if top {
		s.sameSideLeftN = source.UpperLeftN
	} else {
		s.sameSideLeftN = source.LowerLeftN
	}
	s.otherSideLeftN = previousIdx
}

// moreIntersectedTrapezoids handles the case where segment crosses two or
// more existing trapezoids, named left to right by path. It maintains a
// top strip and a bottom strip, closing each out and starting a new one
// whenever the next intersected trapezoid's left corner shows the
// corresponding strip has ended, then finishes both strips against the
// segment's right endpoint once path is exhausted.
func moreIntersectedTrapezoids(tmap *TrapezoidalMap, dag *SearchDAG, segIdx Index, segment geometry.Segment, p1Idx, p2Idx Index, path []Index) {
	orig := make([]Trapezoid, len(path))
	for i, idx := range path {
		orig[i] = tmap.Get(idx)
	}
	first := orig[0]
	last := orig[len(orig)-1]

	leftExists := segment.P1 != first.LeftPt
	var leftIdx Index = NilIndex
	if leftExists {
		leftIdx = tmap.Add(newTrapezoid(first.TopSeg, first.BottomSeg, first.LeftPt, segment.P1))
		leftTrap := tmap.Get(leftIdx)
		leftTrap.UpperLeftN, leftTrap.LowerLeftN = first.UpperLeftN, first.LowerLeftN
		tmap.Replace(leftIdx, leftTrap)
		fixupNeighbor(tmap, first.UpperLeftN, path[0], leftIdx)
		fixupNeighbor(tmap, first.LowerLeftN, path[0], leftIdx)
	}

	var top, bottom strip
	top.start(dag, first, path[0], segment.P1, true, leftExists, leftIdx)
	bottom.start(dag, first, tmap.Add(Trapezoid{}), segment.P1, false, leftExists, leftIdx)
	if leftExists {
		leftTrap := tmap.Get(leftIdx)
		leftTrap.UpperRightN, leftTrap.LowerRightN = top.idx, bottom.idx
		tmap.Replace(leftIdx, leftTrap)
	} else {
		fixupNeighbor(tmap, first.UpperLeftN, path[0], top.idx)
		fixupNeighbor(tmap, first.LowerLeftN, path[0], bottom.idx)
	}

	// Rewire the original DAG leaf at each fully-processed path trapezoid
	// into a Y-node dispatching to whichever strip leaf currently covers it.
	rewriteY := func(i int, aboveLeaf, belowLeaf Index) {
		dag.ReplaceNode(orig[i].NodeIdx, yNode(segIdx, aboveLeaf, belowLeaf))
	}

	for i := 1; i < len(path); i++ {
		prevTrap := orig[i-1]
		// prevTrap.RightPt at or above segment: that vertex falls in the top
		// region, so it's the top strip whose boundary changes here and must
		// close and restart (mirroring FollowSegment's own tie convention,
		// which also sends this case to the lower neighbor = path[i]).
		topEnds := segment.Orientation(prevTrap.RightPt) >= 0

		if topEnds {
			top.close(tmap, true, segment, prevTrap.RightPt, prevTrap.UpperRightN, path[i])
			fixupNeighbor(tmap, prevTrap.UpperRightN, path[i-1], top.idx)
			rewriteY(i-1, top.leaf, bottom.leaf)
			top.restart(dag, orig[i], path[i], prevTrap.RightPt, true)
		} else {
			bottom.close(tmap, false, segment, prevTrap.RightPt, path[i], prevTrap.LowerRightN)
			fixupNeighbor(tmap, prevTrap.LowerRightN, path[i-1], bottom.idx)
			rewriteY(i-1, top.leaf, bottom.leaf)
			bottom.restart(dag, orig[i], path[i], prevTrap.RightPt, false)
		}
	}

	rightExists := segment.P2 != last.RightPt
	var rightIdx Index = NilIndex
	var topUpperRightN, bottomLowerRightN Index = NilIndex, NilIndex
	if rightExists {
		rightIdx = tmap.Add(Trapezoid{})
		topUpperRightN, bottomLowerRightN = rightIdx, rightIdx
	} else {
		if !last.rightPointMatchesTop() {
			topUpperRightN = last.UpperRightN
		}
		if !last.rightPointMatchesBottom() {
			bottomLowerRightN = last.LowerRightN
		}
	}
	top.close(tmap, true, segment, segment.P2, topUpperRightN, NilIndex)
	bottom.close(tmap, false, segment, segment.P2, NilIndex, bottomLowerRightN)

	if rightExists {
		rightTrap := newTrapezoid(last.TopSeg, last.BottomSeg, segment.P2, last.RightPt)
		rightTrap.UpperLeftN, rightTrap.LowerLeftN = top.idx, bottom.idx
		rightTrap.UpperRightN, rightTrap.LowerRightN = last.UpperRightN, last.LowerRightN
		fixupNeighbor(tmap, last.UpperRightN, path[len(path)-1], rightIdx)
		fixupNeighbor(tmap, last.LowerRightN, path[len(path)-1], rightIdx)
		leafRight := dag.AddNode(SearchNode{})
		rightTrap.NodeIdx = leafRight
		dag.ReplaceNode(leafRight, leafNode(rightIdx))
		tmap.Replace(rightIdx, rightTrap)

		yIdx := dag.AddNode(yNode(segIdx, top.leaf, bottom.leaf))
		dag.ReplaceNode(last.NodeIdx, xNode(p2Idx, yIdx, leafRight))
	} else {
		fixupNeighbor(tmap, last.UpperRightN, path[len(path)-1], top.idx)
		fixupNeighbor(tmap, last.LowerRightN, path[len(path)-1], bottom.idx)
		dag.ReplaceNode(last.NodeIdx, yNode(segIdx, top.leaf, bottom.leaf))
	}

	// Stitch the left side in last, once all strip leaves are finalized:
	// first's own slot becomes an X-node over the left cap if one exists,
	// else the Y-node dispatching into the very first strip pair.
	if leftExists {
		leafLeft := dag.AddNode(leafNode(leftIdx))
		leftTrap := tmap.Get(leftIdx)
		leftTrap.NodeIdx = leafLeft
		tmap.Replace(leftIdx, leftTrap)

		if len(path) == 1 {
			// unreachable: len(path) > 1 is this function's precondition.
			fail.Fatalf("seidel: moreIntersectedTrapezoids called with a single-trapezoid path")
		}
		// first's leaf (at first.NodeIdx) was already rewritten to a Y-node
		// by rewriteY(0, ...) inside the loop above when i==1; promote it one
		// level by moving that Y-node to a fresh slot and putting the X-node
		// in its place.
		yContent := dag.Node(first.NodeIdx)
		yIdx := dag.AddNode(yContent)
		dag.ReplaceNode(first.NodeIdx, xNode(p1Idx, leafLeft, yIdx))
	}
}
