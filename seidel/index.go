// Package seidel implements the randomized incremental construction of a
// trapezoidal map and its point-location search DAG, after Seidel 1991. It
// keeps two arenas — a TrapezoidalMap and a SearchDAG — in lockstep as
// segments are inserted one at a time in a caller-chosen order.
package seidel

import "math"

// Index is the arena index type used throughout the package, for both the
// TrapezoidalMap and the SearchDAG.
type Index = uint32

// NilIndex is the sentinel meaning "no neighbor" / "no child". It is the
// maximum value of Index, which no arena will ever legitimately allocate.
const NilIndex Index = math.MaxUint32

// BoundingBox is the half-width of the initial bounding-rectangle trapezoid.
// All inserted segment endpoints must lie strictly inside
// [-BoundingBox, BoundingBox] x [-BoundingBox, BoundingBox].
const BoundingBox = 1e6
