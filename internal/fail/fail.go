// Package fail implements the panic/recover convention the core uses for
// its fatal error kinds. Threading errors up through every recursive helper
// in the insertion algorithm would add a lot of plumbing for faults that are
// never meant to be recovered from inside the core; instead we panic with a
// typed error and let the public-facing boundary (package trapezoidalmap)
// recover and convert it.
package fail

import "github.com/pkg/errors"

// Error is the type every panic raised by this package carries. Callers
// recovering a panic should type-assert for this to distinguish an
// intentional fault from a genuine bug elsewhere in the call stack.
type Error struct{ error }

// Fatalf panics with an Error built from a pkg/errors-formatted message, so
// the panic carries a stack trace.
func Fatalf(format string, args ...interface{}) {
	panic(Error{errors.Errorf(format, args...)})
}

// Assert panics via Fatalf if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		Fatalf(format, args...)
	}
}

// Recover converts a recovered panic value into an error if it is one of
// ours, and re-panics anything else. Call this in a deferred function at a
// package boundary, e.g.:
//
//	defer func() { err = Recover(recover()) }()
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if e, ok := r.(Error); ok {
		return e
	}
	panic(r)
}
