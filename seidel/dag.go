package seidel

// SearchDAG is an arena of SearchNode values, indexed by Index. It plays the
// role the original source's Dag class plays around a std::vector<Node>: all
// child references are by index, never by pointer, so a node can be shared
// by more than one parent without any aliasing concerns.
type SearchDAG struct {
	nodes []SearchNode
	root  Index
}

// NewSearchDAG returns an empty DAG with no root set.
func NewSearchDAG() *SearchDAG {
	return &SearchDAG{root: NilIndex}
}

// AddNode appends node and returns the index it was stored at.
func (d *SearchDAG) AddNode(node SearchNode) Index {
	idx := Index(len(d.nodes))
	d.nodes = append(d.nodes, node)
	return idx
}

// ReplaceNode overwrites the node at idx. It reports false if idx is out of
// range, in which case the DAG is left unmodified.
func (d *SearchDAG) ReplaceNode(idx Index, node SearchNode) bool {
	if int(idx) >= len(d.nodes) {
		return false
	}
	d.nodes[idx] = node
	return true
}

// Node returns the node stored at idx.
func (d *SearchDAG) Node(idx Index) SearchNode {
	return d.nodes[idx]
}

// NumNodes reports how many nodes the arena currently holds.
func (d *SearchDAG) NumNodes() int {
	return len(d.nodes)
}

// Root returns the index of the DAG's root node.
func (d *SearchDAG) Root() Index {
	return d.root
}

// SetRoot updates the DAG's root node index.
func (d *SearchDAG) SetRoot(idx Index) {
	d.root = idx
}

// Clear empties the arena and resets the root.
func (d *SearchDAG) Clear() {
	d.nodes = nil
	d.root = NilIndex
}
