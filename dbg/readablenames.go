// Package dbg converts arena indices into random readable names, purely for
// telling apart trapezoid/node indices in debug logs. It flagrantly leaks
// memory but generates names lazily, so it's not a problem unless you're
// actually logging a lot of them.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Names are generated in order of demand, so we make them
	// nondeterministic to remind the reader that the same name doesn't refer
	// to the same index between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable alias for (kind, idx), memoized so the same pair
// always maps to the same alias within a process. idx == nilIndex prints as
// the empty-neighbor marker.
func Name(kind string, idx uint32, nilIndex uint32) string {
	if idx == nilIndex {
		return "Ø"
	}
	key := fmt.Sprintf("%s#%d", kind, idx)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
