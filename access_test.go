// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/variant"
)

func TestGetWrongAlternative(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	_, err := variant.Get[string](v)
	if !errors.Is(err, variant.ErrWrongAlternative) {
		t.Fatalf("Get[string] error = %v, want ErrWrongAlternative", err)
	}
	var ae *variant.AccessError
	if !errors.As(err, &ae) || ae.Want != 1 || ae.Got != 0 {
		t.Fatalf("AccessError = %+v", ae)
	}
}

func TestGetValueless(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	v.Reset()
	_, err := variant.Get[int](v)
	if !errors.Is(err, variant.ErrValueless) {
		t.Fatalf("Get on valueless error = %v, want ErrValueless", err)
	}
}

func TestGetNonAlternativeType(t *testing.T) {
	s := intStringSet()
	v := s.Zero()
	wantConfigPanic(t, func() { variant.Get[bool](v) })
}

func TestMustGet(t *testing.T) {
	s := intStringSet()
	v := s.Of("abc")
	if got := variant.MustGet[string](v); got != "abc" {
		t.Fatalf("MustGet = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet on wrong alternative did not panic")
		}
	}()
	variant.MustGet[int](v)
}

func TestGetAt(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	x, err := variant.GetAt(v, 0)
	if err != nil || x.(int) != 10 {
		t.Fatalf("GetAt(0) = %v, %v", x, err)
	}
	if _, err := variant.GetAt(v, 1); !errors.Is(err, variant.ErrWrongAlternative) {
		t.Fatalf("GetAt(1) error = %v", err)
	}
	wantConfigPanic(t, func() { variant.GetAt(v, 5) })
}

func TestGetIfConsistentWithHolds(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	mutators := []func(){
		func() { _ = v.Assign("abc") },
		func() { _ = v.Assign(3) },
		func() { _ = variant.EmplaceAs[string](&v, "x") },
		func() { v.Reset() },
	}
	check := func() {
		t.Helper()
		if (variant.GetIf[int](&v) != nil) != variant.Holds[int](v) {
			t.Fatalf("GetIf[int] and Holds[int] disagree at %v", v)
		}
		if (variant.GetIf[string](&v) != nil) != variant.Holds[string](v) {
			t.Fatalf("GetIf[string] and Holds[string] disagree at %v", v)
		}
	}
	check()
	for _, m := range mutators {
		m()
		check()
	}
}

func TestGetIfNilVariant(t *testing.T) {
	if p := variant.GetIf[int](nil); p != nil {
		t.Fatalf("GetIf(nil) = %v", p)
	}
}

func TestGetIfUnboundVariant(t *testing.T) {
	// The zero Variant is valueless; the never-failing queries report
	// that instead of panicking.
	var v variant.Variant
	if p := variant.GetIf[int](&v); p != nil {
		t.Fatalf("GetIf on unbound variant = %v, want nil", p)
	}
	if variant.Holds[int](v) {
		t.Fatalf("Holds on unbound variant = true")
	}
}

func TestGetIfMutatesInPlace(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	p := variant.GetIf[int](&v)
	if p == nil {
		t.Fatalf("GetIf[int] = nil on live alternative")
	}
	*p = 99
	if n, _ := variant.Get[int](v); n != 99 {
		t.Fatalf("in-place write not visible: %d", n)
	}
}

func TestGetIfAt(t *testing.T) {
	s := intStringSet()
	v := s.Of("abc")
	cell := variant.GetIfAt(&v, 1)
	p, ok := cell.(*string)
	if !ok || *p != "abc" {
		t.Fatalf("GetIfAt(1) = %v", cell)
	}
	if variant.GetIfAt(&v, 0) != nil {
		t.Fatalf("GetIfAt(0) non-nil on inactive alternative")
	}
	wantConfigPanic(t, func() { variant.GetIfAt(&v, 9) })
}

func TestExtract(t *testing.T) {
	s := intStringSet()
	v := s.Of("payload")
	got, err := variant.Extract[string](&v)
	if err != nil || got != "payload" {
		t.Fatalf("Extract = %q, %v", got, err)
	}
	if !v.Valueless() {
		t.Fatalf("Extract left the variant live")
	}
	// Wrong alternative: nothing is moved.
	w := s.Of(3)
	if _, err := variant.Extract[string](&w); !errors.Is(err, variant.ErrWrongAlternative) {
		t.Fatalf("Extract error = %v", err)
	}
	if w.Valueless() {
		t.Fatalf("failed Extract consumed the value")
	}
}

func TestHolds(t *testing.T) {
	s := intStringSet()
	v := s.Of(10)
	if !variant.Holds[int](v) || variant.Holds[string](v) {
		t.Fatalf("Holds inconsistent: int=%t string=%t",
			variant.Holds[int](v), variant.Holds[string](v))
	}
	wantConfigPanic(t, func() { variant.Holds[bool](v) })
}
