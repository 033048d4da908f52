package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchNode_Constructors(t *testing.T) {
	leaf := leafNode(5)
	assert.Equal(t, NodeLeaf, leaf.Kind)
	assert.EqualValues(t, 5, leaf.Idx)
	assert.Equal(t, NilIndex, leaf.Left)
	assert.Equal(t, NilIndex, leaf.Right)

	x := xNode(2, 10, 11)
	assert.Equal(t, NodeX, x.Kind)
	assert.EqualValues(t, 2, x.Idx)
	assert.EqualValues(t, 10, x.Left)
	assert.EqualValues(t, 11, x.Right)

	y := yNode(3, 20, 21)
	assert.Equal(t, NodeY, y.Kind)
	assert.EqualValues(t, 3, y.Idx)
	assert.EqualValues(t, 20, y.Left)
	assert.EqualValues(t, 21, y.Right)
}

func TestSearchNode_String(t *testing.T) {
	assert.Contains(t, leafNode(1).String(), "LEAF")
	assert.Contains(t, xNode(1, NilIndex, NilIndex).String(), "X(")
	assert.Contains(t, yNode(1, NilIndex, NilIndex).String(), "Y(")
}
