// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "fmt"

// Visitor is a capability-complete dispatch table over one Set: exactly
// one case per alternative, all yielding a common result type R. Cases
// are registered with Case and CaseAt; Build verifies completeness at
// definition time, so a missing case can never surface during Visit.
type Visitor[R any] struct {
	set      *Set
	cases    []func(any) R
	complete bool
}

// NewVisitor starts a visitor definition over s.
func NewVisitor[R any](s *Set) *Visitor[R] {
	if s == nil {
		panicConfig("new visitor", "set is nil")
	}
	return &Visitor[R]{set: s, cases: make([]func(any) R, s.Size())}
}

// Case registers the case for the unique alternative of type T.
// Duplicate registration is a definition error.
func Case[T, R any](vis *Visitor[R], fn func(T) R) *Visitor[R] {
	i := indexOf[T]("visitor case", vis.set)
	if vis.cases[i] != nil {
		panicConfig("visitor case", "duplicate case for %s", vis.set.altName(i))
	}
	vis.cases[i] = func(x any) R { return fn(x.(T)) }
	return vis
}

// CaseAt registers the case for alternative i, receiving the live value
// type-erased.
func CaseAt[R any](vis *Visitor[R], i int, fn func(any) R) *Visitor[R] {
	vis.set.mustInRange("visitor case", i)
	if vis.cases[i] != nil {
		panicConfig("visitor case", "duplicate case for %s", vis.set.altName(i))
	}
	vis.cases[i] = fn
	return vis
}

// Build verifies that every alternative has a case. An incomplete visitor
// is a definition error; a complete one is immutable and reusable across
// any number of Visit calls.
func (vis *Visitor[R]) Build() *Visitor[R] {
	for i, c := range vis.cases {
		if c == nil {
			panicConfig("visitor build", "missing case for %s", vis.set.altName(i))
		}
	}
	vis.complete = true
	return vis
}

// Visit dispatches to the single case matching v's live alternative and
// returns that case's result. The visitor must be Built and range over
// v's set. A valueless v yields an AccessError; exactly one case runs
// per call, with no retry.
func Visit[R any](vis *Visitor[R], v Variant) (R, error) {
	if !vis.complete {
		panicConfig("visit", "visitor is not built")
	}
	vis.set.mustSame("visit", v.set)
	i := v.Index()
	if i == Npos {
		var zero R
		return zero, &AccessError{set: vis.set, Want: Npos, Got: Npos}
	}
	return vis.cases[i](deref(v.cell)), nil
}

// MultiVisitor dispatches over the cross product of several sets'
// alternatives: one case per combination of discriminants, in set order.
type MultiVisitor[R any] struct {
	sets     []*Set
	sizes    []int
	cases    []func(vals []any) R
	complete bool
}

// NewMultiVisitor starts a visitor definition over the given sets, one
// per variant argument of the eventual VisitAll call.
func NewMultiVisitor[R any](sets ...*Set) *MultiVisitor[R] {
	if len(sets) == 0 {
		panicConfig("new multi visitor", "at least one set required")
	}
	sizes := make([]int, len(sets))
	product := 1
	for k, s := range sets {
		if s == nil {
			panicConfig("new multi visitor", "set %d is nil", k)
		}
		sizes[k] = s.Size()
		product *= s.Size()
	}
	return &MultiVisitor[R]{sets: sets, sizes: sizes, cases: make([]func([]any) R, product)}
}

// CaseTuple registers the case for one combination of discriminants,
// idx[k] selecting the alternative of the k-th set. The case receives the
// live values in the same order.
func CaseTuple[R any](vis *MultiVisitor[R], idx []int, fn func(vals ...any) R) *MultiVisitor[R] {
	pos := vis.linear("multi visitor case", idx)
	if vis.cases[pos] != nil {
		panicConfig("multi visitor case", "duplicate case for %v", idx)
	}
	vis.cases[pos] = func(vals []any) R { return fn(vals...) }
	return vis
}

// Case2 registers the case for the (A, B) combination of a two-set
// visitor, with typed values.
func Case2[A, B, R any](vis *MultiVisitor[R], fn func(A, B) R) *MultiVisitor[R] {
	if len(vis.sets) != 2 {
		panicConfig("multi visitor case", "Case2 requires a two-set visitor, have %d", len(vis.sets))
	}
	i := indexOf[A]("multi visitor case", vis.sets[0])
	j := indexOf[B]("multi visitor case", vis.sets[1])
	return CaseTuple(vis, []int{i, j}, func(vals ...any) R {
		return fn(vals[0].(A), vals[1].(B))
	})
}

// Build verifies the full cross product of alternatives is covered.
func (vis *MultiVisitor[R]) Build() *MultiVisitor[R] {
	for pos, c := range vis.cases {
		if c == nil {
			panicConfig("multi visitor build", "missing case for %v", vis.tuple(pos))
		}
	}
	vis.complete = true
	return vis
}

// VisitAll dispatches to the single case matching the discriminant tuple
// of vs and returns its result. Each variant must range over the
// corresponding set; any valueless variant yields an AccessError.
func VisitAll[R any](vis *MultiVisitor[R], vs ...Variant) (R, error) {
	if !vis.complete {
		panicConfig("visit", "multi visitor is not built")
	}
	if len(vs) != len(vis.sets) {
		panicConfig("visit", "visitor covers %d variants, got %d", len(vis.sets), len(vs))
	}
	var zero R
	idx := make([]int, len(vs))
	vals := make([]any, len(vs))
	for k, v := range vs {
		vis.sets[k].mustSame("visit", v.set)
		if v.Index() == Npos {
			return zero, &AccessError{set: vis.sets[k], Want: Npos, Got: Npos}
		}
		idx[k] = v.Index()
		vals[k] = deref(v.cell)
	}
	return vis.cases[vis.linear("visit", idx)](vals), nil
}

// linear maps a discriminant tuple to its cross-product position.
func (vis *MultiVisitor[R]) linear(op string, idx []int) int {
	if len(idx) != len(vis.sets) {
		panicConfig(op, "tuple length %d does not match %d sets", len(idx), len(vis.sets))
	}
	pos := 0
	for k, i := range idx {
		vis.sets[k].mustInRange(op, i)
		pos = pos*vis.sizes[k] + i
	}
	return pos
}

// tuple is the inverse of linear, for diagnostics.
func (vis *MultiVisitor[R]) tuple(pos int) string {
	idx := make([]int, len(vis.sizes))
	for k := len(vis.sizes) - 1; k >= 0; k-- {
		idx[k] = pos % vis.sizes[k]
		pos /= vis.sizes[k]
	}
	return fmt.Sprintf("%v", idx)
}
