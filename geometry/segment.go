package geometry

// Segment carries two endpoints without implicit order. An "ordered" segment
// has P1.X <= P2.X; callers that need the ascending form use Ordered.
type Segment struct {
	P1, P2 Point
}

// IsAscending reports whether the segment's endpoints are already in
// strict x-ascending order (P1.X < P2.X). A vertical segment (P1.X ==
// P2.X) is not ascending: the core treats that as a precondition
// violation, not an edge case, matching the reference implementation's
// own `assert(segment.p1().x() < segment.p2().x())`.
func (s Segment) IsAscending() bool {
	return s.P1.X < s.P2.X
}

// Ordered returns a copy of the segment with P1.X <= P2.X.
func (s Segment) Ordered() Segment {
	if s.P1.X > s.P2.X {
		return Segment{s.P2, s.P1}
	}
	return s
}

// IsLeftOf reports whether p lies strictly above the line through the
// segment's endpoints (the "strictly left" orientation predicate of
// spec.md, named for a left-to-right walk along the segment: travelling
// from the segment's ordered P1 to its ordered P2, a point above the line is
// to the left of the direction of travel). Exact coincidence with the
// segment, or a point below it, both return false: the design treats
// "on the line" as "right/below" for branching, per spec.md §9.
func (s Segment) IsLeftOf(p Point) bool {
	return s.Orientation(p) > 0
}

// Orientation returns the sign of the cross product of the segment's
// direction (ordered P1 to P2) against the vector from P1 to p: positive
// when p is above the line, negative when below, zero when p lies exactly
// on it (including when p coincides with an endpoint).
func (s Segment) Orientation(p Point) int {
	ordered := s.Ordered()
	cross := (ordered.P2.X-ordered.P1.X)*(p.Y-ordered.P1.Y) -
		(ordered.P2.Y-ordered.P1.Y)*(p.X-ordered.P1.X)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}
