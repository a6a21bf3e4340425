// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Get returns a copy of the live value as type T. T must be a unique
// alternative of the variant's set (definition error otherwise). When a
// different alternative is live, or the variant is valueless, an
// AccessError is returned; never a reinterpreted value.
func Get[T any](v Variant) (T, error) {
	i := indexOf[T]("get", v.set)
	if v.Index() != i {
		var zero T
		return zero, &AccessError{set: v.set, Want: i, Got: v.Index()}
	}
	return *v.cell.(*T), nil
}

// MustGet is Get panicking on an access error.
func MustGet[T any](v Variant) T {
	x, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// GetAt returns a copy of the live value by alternative index. i out of
// range is a definition error; a non-live i yields an AccessError.
func GetAt(v Variant, i int) (any, error) {
	s := v.mustSet("get at")
	s.mustInRange("get at", i)
	if v.Index() != i {
		return nil, &AccessError{set: s, Want: i, Got: v.Index()}
	}
	return deref(v.cell), nil
}

// GetIf returns a pointer to the live value when alternative T is active,
// and nil otherwise — including for a nil, unbound or valueless variant.
// It never fails and is the mutable entry point: writes through the
// returned pointer update the variant's stored value in place.
func GetIf[T any](v *Variant) *T {
	if v == nil || v.set == nil {
		return nil
	}
	i := indexOf[T]("get if", v.set)
	if v.Index() != i {
		return nil
	}
	return v.cell.(*T)
}

// GetIfAt is GetIf by alternative index: the storage cell (a *T boxed in
// any) when i is live, nil otherwise.
func GetIfAt(v *Variant, i int) any {
	if v == nil {
		return nil
	}
	s := v.mustSet("get if at")
	s.mustInRange("get if at", i)
	if v.Index() != i {
		return nil
	}
	return v.cell
}

// Extract moves the live value out as type T, leaving the variant
// valueless. The read-and-transfer form of Get; the value's Dispose hook
// is not invoked, ownership passes to the caller.
func Extract[T any](v *Variant) (T, error) {
	i := indexOf[T]("extract", v.set)
	if v.Index() != i {
		var zero T
		return zero, &AccessError{set: v.set, Want: i, Got: v.Index()}
	}
	x := *v.cell.(*T)
	v.idx, v.cell = Npos, nil
	return x, nil
}

// Holds reports whether alternative T is live: the boolean equivalent of
// GetIf returning non-nil, for call sites that do not need the value.
// False for an unbound variant.
func Holds[T any](v Variant) bool {
	if v.set == nil {
		return false
	}
	return v.Index() == indexOf[T]("holds", v.set)
}
