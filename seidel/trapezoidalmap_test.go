package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simoseu/trapezoidalmap/geometry"
)

func sampleTrapezoid() Trapezoid {
	top := geometry.Segment{P1: geometry.Point{X: -1, Y: 1}, P2: geometry.Point{X: 1, Y: 1}}
	bottom := geometry.Segment{P1: geometry.Point{X: -1, Y: -1}, P2: geometry.Point{X: 1, Y: -1}}
	return newTrapezoid(top, bottom, geometry.Point{X: -1, Y: 0}, geometry.Point{X: 1, Y: 0})
}

func TestTrapezoidalMap_AddGetReplace(t *testing.T) {
	m := NewTrapezoidalMap()
	idx := m.Add(sampleTrapezoid())
	assert.EqualValues(t, 0, idx)
	assert.Equal(t, 1, m.NumTrapezoids())

	trap := m.Get(idx)
	assert.Equal(t, geometry.Point{X: -1, Y: 0}, trap.LeftPt)

	trap.RightPt = geometry.Point{X: 2, Y: 0}
	ok := m.Replace(idx, trap)
	assert.True(t, ok)
	assert.Equal(t, geometry.Point{X: 2, Y: 0}, m.Get(idx).RightPt)

	assert.False(t, m.Replace(42, trap))
}

func TestTrapezoid_EndpointMatchHelpers(t *testing.T) {
	// top's left endpoint sits at the trapezoid's own left corner; bottom's
	// left endpoint is further left, so only the top match holds.
	top := geometry.Segment{P1: geometry.Point{X: -1, Y: 0}, P2: geometry.Point{X: 1, Y: 1}}
	bottom := geometry.Segment{P1: geometry.Point{X: -2, Y: -1}, P2: geometry.Point{X: 1, Y: -1}}
	trap := newTrapezoid(top, bottom, geometry.Point{X: -1, Y: 0}, geometry.Point{X: 1, Y: 0.5})

	assert.True(t, trap.leftPointMatchesTop())
	assert.False(t, trap.leftPointMatchesBottom())
	assert.False(t, trap.rightPointMatchesTop())
	assert.False(t, trap.rightPointMatchesBottom())

	trap.RightPt = geometry.Point{X: 1, Y: 1}
	assert.True(t, trap.rightPointMatchesTop())
}

func TestTrapezoid_String_NamesBoundaryTrapezoidsDistinctly(t *testing.T) {
	bounding := sampleTrapezoid() // all four neighbors NilIndex: borders the box
	assert.Contains(t, bounding.String(), "Trapezoid")

	interior := sampleTrapezoid()
	interior.UpperLeftN, interior.LowerLeftN = 1, 2
	interior.UpperRightN, interior.LowerRightN = 3, 4

	// The two should render with different ANSI coloring (cyan vs green),
	// even though their geometry is identical.
	assert.NotEqual(t, bounding.dbgName(), interior.dbgName())
}

func TestTrapezoidalMap_Clear(t *testing.T) {
	m := NewTrapezoidalMap()
	m.Add(sampleTrapezoid())
	m.Clear()
	assert.Equal(t, 0, m.NumTrapezoids())
}
