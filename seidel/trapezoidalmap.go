package seidel

// TrapezoidalMap is an arena of Trapezoid values, indexed by Index. Like
// SearchDAG, it mirrors the original source's vector-backed
// TrapezoidalMap class: trapezoids never move once allocated, so an Index
// into this arena stays valid for the trapezoid's whole lifetime, including
// across a Replace that overwrites its fields in place.
type TrapezoidalMap struct {
	trapezoids []Trapezoid
}

// NewTrapezoidalMap returns an empty trapezoidal map.
func NewTrapezoidalMap() *TrapezoidalMap {
	return &TrapezoidalMap{}
}

// Add appends trap and returns the index it was stored at.
func (m *TrapezoidalMap) Add(trap Trapezoid) Index {
	idx := Index(len(m.trapezoids))
	m.trapezoids = append(m.trapezoids, trap)
	return idx
}

// Replace overwrites the trapezoid at idx. It reports false if idx is out
// of range, in which case the map is left unmodified.
func (m *TrapezoidalMap) Replace(idx Index, trap Trapezoid) bool {
	if int(idx) >= len(m.trapezoids) {
		return false
	}
	m.trapezoids[idx] = trap
	return true
}

// Get returns the trapezoid stored at idx.
func (m *TrapezoidalMap) Get(idx Index) Trapezoid {
	return m.trapezoids[idx]
}

// NumTrapezoids reports how many trapezoids the arena currently holds.
func (m *TrapezoidalMap) NumTrapezoids() int {
	return len(m.trapezoids)
}

// Clear empties the arena.
func (m *TrapezoidalMap) Clear() {
	m.trapezoids = nil
}
