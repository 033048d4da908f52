package seidel

import (
	"github.com/simoseu/trapezoidalmap/geometry"
	"github.com/simoseu/trapezoidalmap/internal/fail"
)

// sideOf decides which child of a Y-node a point falls on. It returns true
// for "above" (the node's Left child) and false for "below" (Right). A
// point exactly on the node's segment — including one that coincides with
// an endpoint — is ambiguous from the point alone; when tiebreak is
// non-nil (QuerySegment passes the other endpoint of the segment being
// located, and the build algorithm reaches it through FollowSegment), the
// tiebreak point's own
// orientation against the node's segment settles the tie. With no
// tiebreak, the convention is to treat "on the line" as below, per the
// orientation predicate's own default.
func sideOf(nodeSeg geometry.Segment, p geometry.Point, tiebreak *geometry.Point) bool {
	switch o := nodeSeg.Orientation(p); {
	case o > 0:
		return true
	case o < 0:
		return false
	default:
		if tiebreak == nil {
			return false
		}
		return nodeSeg.Orientation(*tiebreak) > 0
	}
}

// locate walks the DAG from root to a leaf, using point for every X-node
// and Y-node decision. tiebreak, if non-nil, resolves Y-node ties the way
// QuerySegment needs to: see sideOf.
func locate(dag *SearchDAG, dataset Dataset, root Index, point geometry.Point, tiebreak *geometry.Point) Index {
	idx := root
	for {
		node := dag.Node(idx)
		switch node.Kind {
		case NodeLeaf:
			return node.Idx
		case NodeX:
			key := dataset.GetPoint(node.Idx)
			if point.X < key.X {
				idx = node.Left
			} else {
				idx = node.Right
			}
		case NodeY:
			seg := dataset.GetSegment(node.Idx)
			if sideOf(seg, point, tiebreak) {
				idx = node.Left
			} else {
				idx = node.Right
			}
		default:
			fail.Fatalf("seidel: corrupt search node kind %d at index %d", node.Kind, idx)
		}
	}
}

// QueryPoint returns the index of the trapezoid containing point, walking
// down from the DAG's current root.
func QueryPoint(dag *SearchDAG, dataset Dataset, point geometry.Point) Index {
	return locate(dag, dataset, dag.Root(), point, nil)
}

// QuerySegment returns the index of the trapezoid containing segment's
// left (x-ordered) endpoint, breaking Y-node ties with the segment's right
// endpoint. This is the entry point BuildTrapezoidalMap uses before
// following the segment rightward.
func QuerySegment(dag *SearchDAG, dataset Dataset, segment geometry.Segment) Index {
	ordered := segment.Ordered()
	right := ordered.P2
	return locate(dag, dataset, dag.Root(), ordered.P1, &right)
}

// FollowSegment returns, in left-to-right order, the indices of every
// trapezoid that segment passes through. segment must already be in
// x-ascending order (Ordered()). It starts from QuerySegment's result and
// walks the lower-right neighbor when the current trapezoid's right point
// sits on or above the segment and the upper-right neighbor otherwise, per
// I6/I7; it stops once the current trapezoid's right point reaches or
// passes the segment's right endpoint.
func FollowSegment(tmap *TrapezoidalMap, dag *SearchDAG, dataset Dataset, segment geometry.Segment) []Index {
	fail.Assert(segment.IsAscending(), "seidel: FollowSegment requires an x-ascending segment")

	trail := []Index{QuerySegment(dag, dataset, segment)}
	for {
		current := tmap.Get(trail[len(trail)-1])
		if current.RightPt.X >= segment.P2.X {
			return trail
		}
		if segment.Orientation(current.RightPt) >= 0 {
			// current.RightPt is on or above the segment: the segment passes
			// below that corner, so cross into the lower-right neighbor.
			trail = append(trail, current.LowerRightN)
		} else {
			trail = append(trail, current.UpperRightN)
		}
	}
}
