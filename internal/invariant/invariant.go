// Package invariant wraps github.com/arl/assertgo's build-tag-gated
// assertions for the handful of hard invariants spec §8 names (sorted
// scan-line intersections, permutation output, polygon index range). With
// the `debug` build tag these panic loudly on violation; without it, they
// are a no-op, exactly like the teacher's own vendored assertgo package.
package invariant

import assert "github.com/arl/assertgo"

// True panics (under -tags debug) if cond is false.
func True(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

// False panics (under -tags debug) if cond is true.
func False(cond bool, format string, args ...interface{}) {
	assert.False(cond, format, args...)
}
