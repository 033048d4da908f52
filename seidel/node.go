package seidel

import "github.com/simoseu/trapezoidalmap/dbg"

// NodeKind discriminates the three variants a SearchNode can hold.
type NodeKind uint8

const (
	// NodeLeaf names a trapezoid. Left and Right are unused (NilIndex).
	NodeLeaf NodeKind = iota
	// NodeX decides against a dataset point: Idx is a point index.
	NodeX
	// NodeY decides against a dataset segment: Idx is a segment index.
	NodeY
)

// SearchNode is a flat, tagged record rather than an interface hierarchy:
// Idx is reused by meaning depending on Kind (point index for NodeX, segment
// index for NodeY, trapezoid index for NodeLeaf), mirroring the single
// Node class the original source uses for all three variants. This also
// composes directly with the arena-of-value-structs pattern SearchDAG uses.
type SearchNode struct {
	Kind        NodeKind
	Idx         Index // point / segment / trapezoid index, per Kind
	Left, Right Index // child indices; NilIndex for a NodeLeaf
}

func leafNode(trapIdx Index) SearchNode {
	return SearchNode{Kind: NodeLeaf, Idx: trapIdx, Left: NilIndex, Right: NilIndex}
}

func xNode(pointIdx, left, right Index) SearchNode {
	return SearchNode{Kind: NodeX, Idx: pointIdx, Left: left, Right: right}
}

func yNode(segmentIdx, left, right Index) SearchNode {
	return SearchNode{Kind: NodeY, Idx: segmentIdx, Left: left, Right: right}
}

func (n SearchNode) String() string {
	switch n.Kind {
	case NodeLeaf:
		return "LEAF(" + dbg.Name("trap", n.Idx, NilIndex) + ")"
	case NodeX:
		return "X(" + dbg.Name("point", n.Idx, NilIndex) + ")"
	case NodeY:
		return "Y(" + dbg.Name("seg", n.Idx, NilIndex) + ")"
	default:
		return "?"
	}
}
