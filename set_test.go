// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/variant"
)

func TestNewSetValidation(t *testing.T) {
	// Empty set
	wantConfigPanic(t, func() { variant.NewSet() })
	// Undeclared descriptor
	wantConfigPanic(t, func() { variant.NewSet(variant.Alternative{}) })
	// Duplicate alternative type
	wantConfigPanic(t, func() { variant.NewSet(variant.Alt[int](), variant.Alt[int]()) })
}

func TestSetSerialIdentity(t *testing.T) {
	a := intStringSet()
	b := intStringSet()
	if a.Serial() == b.Serial() {
		t.Fatalf("distinct sets share serial %d", a.Serial())
	}
	// Same type list, different sets: variants must not interoperate.
	va, vb := a.Zero(), b.Zero()
	wantConfigPanic(t, func() { va.Swap(&vb) })
}

func TestPosition(t *testing.T) {
	s := intStringSet()
	if got := s.Position(reflect.TypeFor[int]()); got != 0 {
		t.Fatalf("Position(int) = %d, want 0", got)
	}
	if got := s.Position(reflect.TypeFor[string]()); got != 1 {
		t.Fatalf("Position(string) = %d, want 1", got)
	}
	// Absent type maps to Size, mirroring an end iterator.
	if got := s.Position(reflect.TypeFor[float64]()); got != s.Size() {
		t.Fatalf("Position(float64) = %d, want %d", got, s.Size())
	}
}

func TestOccurrenceAndUniqueness(t *testing.T) {
	s := intStringSet()
	if n := s.Occurrence(variant.SameType, reflect.TypeFor[int]()); n != 1 {
		t.Fatalf("Occurrence(SameType, int) = %d, want 1", n)
	}
	if n := s.Occurrence(variant.Convertible, reflect.TypeFor[int8]()); n != 1 {
		t.Fatalf("Occurrence(Convertible, int8) = %d, want 1", n)
	}
	if !s.IsUnique(reflect.TypeFor[string]()) {
		t.Fatalf("string should be unique")
	}
	if s.IsUnique(reflect.TypeFor[bool]()) {
		t.Fatalf("absent bool reported unique")
	}
}

func TestIsInRange(t *testing.T) {
	s := intStringSet()
	for i := 0; i < s.Size(); i++ {
		if !s.IsInRange(i) {
			t.Fatalf("IsInRange(%d) = false", i)
		}
	}
	if s.IsInRange(-1) || s.IsInRange(s.Size()) {
		t.Fatalf("out-of-range index accepted")
	}
}

func TestFirstMatch(t *testing.T) {
	s := variant.NewSet(variant.Alt[float64](), variant.Alt[int64](), variant.Alt[string]())
	// Declaration order: int converts to float64 before int64.
	if got := s.FirstMatch(variant.Convertible, reflect.TypeFor[int]()); got != 0 {
		t.Fatalf("FirstMatch(Convertible, int) = %d, want 0", got)
	}
	if got := s.FirstMatch(variant.SameType, reflect.TypeFor[bool]()); got != s.Size() {
		t.Fatalf("FirstMatch miss = %d, want %d", got, s.Size())
	}
}

func TestUniqueMatch(t *testing.T) {
	s := variant.NewSet(variant.Alt[float64](), variant.Alt[int64](), variant.Alt[string]())
	if i, ok := s.UniqueMatch(variant.SameType, reflect.TypeFor[string]()); !ok || i != 2 {
		t.Fatalf("UniqueMatch(SameType, string) = %d, %v", i, ok)
	}
	// int converts to both float64 and int64.
	if i, ok := s.UniqueMatch(variant.Convertible, reflect.TypeFor[int]()); ok {
		t.Fatalf("ambiguous UniqueMatch = %d, want miss", i)
	}
	if _, ok := s.UniqueMatch(variant.SameType, reflect.TypeFor[bool]()); ok {
		t.Fatal("UniqueMatch matched an absent type")
	}
}

func TestTypeAt(t *testing.T) {
	s := intStringSet()
	if got := s.TypeAt(1); got != reflect.TypeFor[string]() {
		t.Fatalf("TypeAt(1) = %s, want string", got)
	}
	wantConfigPanic(t, func() { s.TypeAt(2) })
	if got := s.Name(0); got != "int" {
		t.Fatalf("Name(0) = %q, want int", got)
	}
	wantConfigPanic(t, func() { s.Name(-1) })
}

func TestConvertiblePredicate(t *testing.T) {
	// Numeric widening within the real family.
	if !variant.Convertible(reflect.TypeFor[int](), reflect.TypeFor[float64]()) {
		t.Fatalf("int should convert to float64")
	}
	// The rune-conversion trap stays closed.
	if variant.Convertible(reflect.TypeFor[int](), reflect.TypeFor[string]()) {
		t.Fatalf("int must not convert to string")
	}
	// Real and complex families do not mix.
	if variant.Convertible(reflect.TypeFor[float64](), reflect.TypeFor[complex128]()) {
		t.Fatalf("float64 must not convert to complex128")
	}
	// Interface satisfaction counts as assignability.
	if !variant.Convertible(reflect.TypeFor[*variant.ConfigError](), reflect.TypeFor[error]()) {
		t.Fatalf("*ConfigError should satisfy error")
	}
}

func TestResolutionExactMatchWins(t *testing.T) {
	// int is convertible to float64, but the exact int alternative always
	// wins, independent of other convertible alternatives present.
	s := variant.NewSet(variant.Alt[float64](), variant.Alt[int]())
	v := s.Of(10)
	if v.Index() != 1 {
		t.Fatalf("Of(10) selected %d, want exact-match 1", v.Index())
	}
}

func TestResolutionAmbiguity(t *testing.T) {
	// No exact match and two convertible targets: definition error, the
	// first declared alternative does not silently win.
	s := variant.NewSet(variant.Alt[int64](), variant.Alt[float64]())
	wantConfigPanic(t, func() { s.Of(10) })
}

func TestResolutionNoMatch(t *testing.T) {
	s := variant.NewSet(variant.Alt[string]())
	wantConfigPanic(t, func() { s.Of(10) })
}

func TestResolutionUniqueConversion(t *testing.T) {
	s := variant.NewSet(variant.Alt[string](), variant.Alt[float64]())
	v := s.Of(10)
	if v.Index() != 1 {
		t.Fatalf("Of(10) selected %d, want 1", v.Index())
	}
	f, err := variant.Get[float64](v)
	if err != nil || f != 10 {
		t.Fatalf("Get[float64] = %v, %v; want 10, nil", f, err)
	}
}

func TestSetStringer(t *testing.T) {
	s := intStringSet()
	got := s.String()
	want := "[int|string]"
	if len(got) == 0 || got[len(got)-len(want):] != want {
		t.Fatalf("String() = %q, want suffix %q", got, want)
	}
}
