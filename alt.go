// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"cmp"
	"reflect"
)

// Alternative is the declaration-time descriptor of one member of a Set:
// the type identity, an optional failable factory, equality and ordering
// hooks, and the default-constructibility flag. Descriptors are plain
// values; modifiers return modified copies, leaving Sets immutable.
type Alternative struct {
	typ      reflect.Type
	init     func(args []any) (any, error)
	eq       func(a, b any) bool
	cmp      func(a, b any) int
	required bool
}

// Type reports the Go type this alternative stores.
func (a Alternative) Type() reflect.Type { return a.typ }

// Alt declares an alternative storing T. Equality defaults to == for
// comparable types and reflect.DeepEqual otherwise; no ordering hook is
// attached (see AltOrdered and WithCompare).
func Alt[T any]() Alternative {
	typ := reflect.TypeFor[T]()
	return Alternative{typ: typ, eq: defaultEqual(typ)}
}

// AltOrdered declares an alternative storing an ordered primitive T,
// with equality and ordering derived from cmp.Compare.
func AltOrdered[T cmp.Ordered]() Alternative {
	a := Alt[T]()
	a.cmp = func(x, y any) int { return cmp.Compare(x.(T), y.(T)) }
	return a
}

// AltInit declares an alternative storing T, constructed exclusively
// through init. The factory receives the caller-supplied arguments of the
// in-place or emplace call; a returned error surfaces as a ConstructError
// and, during mutation, leaves the variant valueless. A factory that
// rejects the empty argument list makes the alternative unusable for
// default construction.
func AltInit[T any](init func(args ...any) (T, error)) Alternative {
	a := Alt[T]()
	a.init = func(args []any) (any, error) {
		return init(args...)
	}
	return a
}

// Required marks the alternative as not default-constructible: a Set with
// this alternative in first position rejects Zero. Models payload types
// whose zero value is not a valid state.
func (a Alternative) Required() Alternative {
	a.required = true
	return a
}

// WithEqual replaces the equality hook. T must match the declared type.
func WithEqual[T any](a Alternative, eq func(x, y T) bool) Alternative {
	if t := reflect.TypeFor[T](); t != a.typ {
		panicConfig("with equal", "hook type %s does not match alternative %s", t, a.typ)
	}
	a.eq = func(x, y any) bool { return eq(x.(T), y.(T)) }
	return a
}

// WithCompare attaches an ordering hook. T must match the declared type.
// Equality is derived from the same hook so the two stay consistent.
func WithCompare[T any](a Alternative, fn func(x, y T) int) Alternative {
	if t := reflect.TypeFor[T](); t != a.typ {
		panicConfig("with compare", "hook type %s does not match alternative %s", t, a.typ)
	}
	a.cmp = func(x, y any) int { return fn(x.(T), y.(T)) }
	a.eq = func(x, y any) bool { return fn(x.(T), y.(T)) == 0 }
	return a
}

// defaultEqual derives value equality for typ: == when the type supports
// it, reflect.DeepEqual otherwise.
func defaultEqual(typ reflect.Type) func(a, b any) bool {
	if typ.Comparable() {
		return func(a, b any) bool { return a == b }
	}
	return reflect.DeepEqual
}

// Disposer is the teardown hook for held values. Whenever a variant
// destroys its live value (cross-alternative assignment, emplacement,
// Reset), a value implementing Disposer has Dispose called exactly once,
// before the replacement is constructed. Same-alternative assignment
// replaces the value without invoking the hook.
type Disposer interface {
	Dispose()
}

// dispose tears down a storage cell. cell is the boxed *T; a nil cell is
// a no-op. Pointer-receiver and value-receiver implementations are both
// reached through the *T method set.
func dispose(cell any) {
	if cell == nil {
		return
	}
	if d, ok := cell.(Disposer); ok {
		d.Dispose()
	}
}
