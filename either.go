// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"

	"code.hybscloud.com/kont"
)

// Pair defines the canonical two-alternative set {L, R}, the variant
// counterpart of kont.Either: alternative 0 maps to Left, alternative 1
// to Right. L and R must be distinct types.
func Pair[L, R any]() *Set {
	return NewSet(Alt[L](), Alt[R]())
}

// ToEither converts a variant over a {L, R} pair set into a kont.Either.
// The set must list L at position 0 and R at position 1 (definition error
// otherwise). A valueless variant yields an AccessError: Either has no
// empty state to map it to.
func ToEither[L, R any](v Variant) (kont.Either[L, R], error) {
	s := v.mustSet("to either")
	mustPairSet[L, R]("to either", s)
	switch v.Index() {
	case 0:
		return kont.Left[L, R](*v.cell.(*L)), nil
	case 1:
		return kont.Right[L, R](*v.cell.(*R)), nil
	}
	var zero kont.Either[L, R]
	return zero, &AccessError{set: s, Want: 0, Got: Npos}
}

// FromEither converts a kont.Either into a variant over the {L, R} pair
// set s: Left becomes alternative 0, Right alternative 1. The result is
// never valueless.
func FromEither[L, R any](s *Set, e kont.Either[L, R]) Variant {
	mustPairSet[L, R]("from either", s)
	if e.IsLeft() {
		l, _ := e.GetLeft()
		return Variant{set: s, idx: 0, cell: s.boxValue(s.alt(0), l)}
	}
	r, _ := e.GetRight()
	return Variant{set: s, idx: 1, cell: s.boxValue(s.alt(1), r)}
}

// mustPairSet verifies s is exactly the {L, R} pair shape.
func mustPairSet[L, R any](op string, s *Set) {
	lt, rt := reflect.TypeFor[L](), reflect.TypeFor[R]()
	if s.Size() != 2 || s.TypeAt(0) != lt || s.TypeAt(1) != rt {
		panicConfig(op, "%s is not the pair set {%s, %s}", s, lt, rt)
	}
}
