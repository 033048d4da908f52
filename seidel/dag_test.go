package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchDAG_AddAndReplace(t *testing.T) {
	dag := NewSearchDAG()
	idx := dag.AddNode(leafNode(3))
	assert.EqualValues(t, 0, idx)
	assert.Equal(t, 1, dag.NumNodes())

	got := dag.Node(idx)
	assert.Equal(t, NodeLeaf, got.Kind)
	assert.EqualValues(t, 3, got.Idx)

	ok := dag.ReplaceNode(idx, yNode(7, 1, 2))
	assert.True(t, ok)
	got = dag.Node(idx)
	assert.Equal(t, NodeY, got.Kind)
	assert.EqualValues(t, 7, got.Idx)

	assert.False(t, dag.ReplaceNode(99, leafNode(0)))
}

func TestSearchDAG_RootAndClear(t *testing.T) {
	dag := NewSearchDAG()
	assert.Equal(t, NilIndex, dag.Root())

	idx := dag.AddNode(leafNode(0))
	dag.SetRoot(idx)
	assert.Equal(t, idx, dag.Root())

	dag.Clear()
	assert.Equal(t, 0, dag.NumNodes())
	assert.Equal(t, NilIndex, dag.Root())
}
