// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Predicate relates a query type t to a declared alternative type e.
// Predicates drive the registry searches: SameType for exact lookups,
// Convertible for converting-construction resolution.
type Predicate func(t, e reflect.Type) bool

// SameType reports exact type identity.
func SameType(t, e reflect.Type) bool { return t == e }

// Convertible reports whether a value of type t initializes an alternative
// of type e without an explicit cast: Go assignability (including interface
// satisfaction) or a numeric-to-numeric conversion within the real or
// complex family. Deliberately narrower than reflect's ConvertibleTo,
// which would admit int-to-string rune conversions and similar traps.
func Convertible(t, e reflect.Type) bool {
	if t.AssignableTo(e) {
		return true
	}
	if isNumeric(t.Kind()) && isNumeric(e.Kind()) {
		return true
	}
	return isComplex(t.Kind()) && isComplex(e.Kind())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

// Set is an ordered, fixed list of distinct alternatives. Sets are
// immutable after NewSet: the alternative list lives in an immutable.List
// and every derived lookup is pure. All variants over a Set carry a
// pointer to it; same-set checks compare serials.
type Set struct {
	serial Serial
	alts   *immutable.List[Alternative]
	byType map[reflect.Type]int
}

// NewSet defines an alternative set from the given descriptors, in
// declaration order. Panics with a ConfigError when the list is empty,
// an alternative is undeclared (zero descriptor), or two alternatives
// share a type.
func NewSet(alts ...Alternative) *Set {
	if len(alts) == 0 {
		panicConfig("new set", "at least one alternative required")
	}
	l := immutable.NewList[Alternative]()
	byType := make(map[reflect.Type]int, len(alts))
	for i, a := range alts {
		if a.typ == nil {
			panicConfig("new set", "alternative %d is not a declared Alternative", i)
		}
		if prev, dup := byType[a.typ]; dup {
			panicConfig("new set", "duplicate alternative %s at %d and %d", a.typ, prev, i)
		}
		byType[a.typ] = i
		l = l.Append(a)
	}
	return &Set{serial: nextSerial(), alts: l, byType: byType}
}

// Serial returns the serial number assigned to this set at definition.
func (s *Set) Serial() Serial { return s.serial }

// Size returns the number of alternatives.
func (s *Set) Size() int { return s.alts.Len() }

// TypeAt returns the declared type of alternative i.
// Panics with a ConfigError when i is out of range.
func (s *Set) TypeAt(i int) reflect.Type {
	s.mustInRange("type at", i)
	return s.alts.Get(i).typ
}

// Name returns the declared type name of alternative i.
// Panics with a ConfigError when i is out of range.
func (s *Set) Name(i int) string {
	s.mustInRange("name", i)
	return s.alts.Get(i).typ.String()
}

// alt returns the descriptor of alternative i. Range already checked.
func (s *Set) alt(i int) Alternative { return s.alts.Get(i) }

// altName formats alternative i for diagnostics.
func (s *Set) altName(i int) string {
	if s == nil || i < 0 || i >= s.Size() {
		return fmt.Sprintf("alternative %d", i)
	}
	return s.alts.Get(i).typ.String()
}

// Position returns the index of the first alternative of exactly type t,
// or Size() when t is absent.
func (s *Set) Position(t reflect.Type) int {
	if i, ok := s.byType[t]; ok {
		return i
	}
	return s.Size()
}

// Occurrence counts the alternatives e for which pred(t, e) holds.
func (s *Set) Occurrence(pred Predicate, t reflect.Type) int {
	n := 0
	for i := 0; i < s.alts.Len(); i++ {
		if pred(t, s.alts.Get(i).typ) {
			n++
		}
	}
	return n
}

// IsUnique reports whether exactly one alternative has type t.
func (s *Set) IsUnique(t reflect.Type) bool {
	return s.Occurrence(SameType, t) == 1
}

// IsInRange reports whether i indexes an alternative.
func (s *Set) IsInRange(i int) bool { return i >= 0 && i < s.Size() }

// FirstMatch returns the index of the first alternative, in declaration
// order, for which pred(t, e) holds, or Size() when none matches.
func (s *Set) FirstMatch(pred Predicate, t reflect.Type) int {
	for i := 0; i < s.alts.Len(); i++ {
		if pred(t, s.alts.Get(i).typ) {
			return i
		}
	}
	return s.Size()
}

// UniqueMatch returns the index of the single alternative for which
// pred(t, e) holds. ok is false when no alternative matches or when
// more than one does.
func (s *Set) UniqueMatch(pred Predicate, t reflect.Type) (int, bool) {
	if s.Occurrence(pred, t) != 1 {
		return s.Size(), false
	}
	return s.FirstMatch(pred, t), true
}

// resolve selects the alternative a value of type t initializes: the
// exact-type alternative when present, otherwise the single alternative
// satisfying Convertible. No match and multiple matches are definition
// errors at this call site; first-declared does not win over ambiguity.
func (s *Set) resolve(op string, t reflect.Type) int {
	if i, ok := s.byType[t]; ok {
		return i
	}
	found := s.Size()
	for i := 0; i < s.alts.Len(); i++ {
		if !Convertible(t, s.alts.Get(i).typ) {
			continue
		}
		if found != s.Size() {
			panicConfig(op, "%s converts to both %s and %s",
				t, s.altName(found), s.altName(i))
		}
		found = i
	}
	if found == s.Size() {
		panicConfig(op, "%s matches no alternative of %s", t, s)
	}
	return found
}

// mustInRange panics with a ConfigError unless i indexes an alternative.
func (s *Set) mustInRange(op string, i int) {
	if !s.IsInRange(i) {
		panicConfig(op, "index %d out of range [0, %d)", i, s.Size())
	}
}

// mustSame panics with a ConfigError unless o is this very set.
// Variants over distinct sets never interoperate, even when the sets
// enumerate identical type lists.
func (s *Set) mustSame(op string, o *Set) {
	if o == nil || o.serial != s.serial {
		panicConfig(op, "variants belong to different sets (%s vs %s)", s, o)
	}
}

// indexOf resolves the unique alternative of type T for typed accessors.
// Absent and duplicate types are definition errors.
func indexOf[T any](op string, s *Set) int {
	if s == nil {
		panicConfig(op, "variant is not bound to a set")
	}
	t := reflect.TypeFor[T]()
	i := s.Position(t)
	if i == s.Size() {
		panicConfig(op, "%s is not an alternative of %s", t, s)
	}
	if !s.IsUnique(t) {
		panicConfig(op, "%s is not unique in %s", t, s)
	}
	return i
}

// String formats the set as variant.Set#serial[T0|T1|...].
func (s *Set) String() string {
	if s == nil {
		return "variant.Set(nil)"
	}
	names := make([]string, s.alts.Len())
	for i := 0; i < s.alts.Len(); i++ {
		names[i] = s.alts.Get(i).typ.String()
	}
	return fmt.Sprintf("variant.Set#%d[%s]", s.serial, strings.Join(names, "|"))
}
