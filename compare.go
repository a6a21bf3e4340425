// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "cmp"

// Equal reports value equality of two variants over the same set:
// equal discriminants and, when not valueless, equal live values under
// the alternative's equality hook. Two valueless variants are equal.
// Comparing variants of different sets is a definition error; two zero
// Variants compare equal.
func Equal(a, b Variant) bool {
	if a.set == nil && b.set == nil {
		return true
	}
	s := a.mustSet("equal")
	s.mustSame("equal", b.set)
	if a.Index() != b.Index() {
		return false
	}
	if a.Index() == Npos {
		return true
	}
	return s.alt(a.idx).eq(deref(a.cell), deref(b.cell))
}

// Compare orders two variants over the same set lexicographically on
// (discriminant, value): a smaller discriminant orders first regardless
// of value, valueless orders before every live state, and equal
// discriminants delegate to the alternative's ordering hook. An
// alternative without an ordering hook (see AltOrdered, WithCompare) is
// a definition error at the first comparison reaching it.
func Compare(a, b Variant) int {
	if a.set == nil && b.set == nil {
		return 0
	}
	s := a.mustSet("compare")
	s.mustSame("compare", b.set)
	ai, bi := a.Index(), b.Index()
	if ai != bi {
		return cmp.Compare(ai, bi)
	}
	if ai == Npos {
		return 0
	}
	alt := s.alt(ai)
	if alt.cmp == nil {
		panicConfig("compare", "%s has no ordering hook", s.altName(ai))
	}
	return alt.cmp(deref(a.cell), deref(b.cell))
}

// Less reports whether a orders before b under Compare.
func Less(a, b Variant) bool { return Compare(a, b) < 0 }
