// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"reflect"
)

// Npos is the discriminant of a valueless variant.
const Npos = -1

// Seq is the initializer-sequence literal for in-place construction:
// a leading Seq argument to At, As or Emplace initializes slice and array
// alternatives element-wise, and reaches factories as the first argument.
// Passing a Seq to converting construction or assignment is a definition
// error; sequences select in-place construction only.
type Seq []any

// Variant is a type-safe closed union over the alternatives of a Set.
// It holds at most one live value, whose type is always exactly the one
// named by Index. A variant becomes valueless only through a failed
// construction during cross-alternative mutation, or through Reset/Move;
// any later assignment or emplacement recovers it.
//
// Variants are plain values with no internal locking. Mutators install a
// fresh storage cell and never write through a previously handed-out one,
// so ordinary struct copies stay independent as long as mutation goes
// through Assign/Emplace/Take. GetIf is the single in-place-mutation door:
// writes through its pointer are visible to copies sharing the cell.
type Variant struct {
	set  *Set
	idx  int
	cell any // *T of the live alternative, nil when valueless
}

// Zero constructs the variant holding the zero value of alternative 0
// (or its zero-argument factory result). Panics with a ConfigError when
// alternative 0 is Required or its factory rejects an empty argument
// list: such a set is not default-constructible. Listing Monostate first
// makes any set default-constructible.
func (s *Set) Zero() Variant {
	a := s.alt(0)
	if a.required {
		panicConfig("zero", "first alternative %s is not default-constructible", a.typ)
	}
	cell, err := s.construct("zero", 0, nil)
	if err != nil {
		panicConfig("zero", "first alternative %s rejects default construction: %v", a.typ, err)
	}
	return Variant{set: s, idx: 0, cell: cell}
}

// TryOf constructs a variant from x by converting-construction resolution:
// the alternative of exactly x's type when present, otherwise the single
// alternative x converts to. No match, ambiguity, untyped nil, a Seq, and
// a Variant value are definition errors (panic); use Clone or AssignFrom
// to copy variants. A factory failure returns a ConstructError.
func (s *Set) TryOf(x any) (Variant, error) {
	t := operandType("of", x)
	i := s.resolve("of", t)
	cell, err := s.construct("of", i, []any{x})
	if err != nil {
		return Variant{}, err
	}
	return Variant{set: s, idx: i, cell: cell}, nil
}

// Of is TryOf panicking on construction failure, for the common case of
// factory-free alternatives where conversion cannot fail.
func (s *Set) Of(x any) Variant {
	v, err := s.TryOf(x)
	if err != nil {
		panic(err)
	}
	return v
}

// At constructs alternative i in place from args, bypassing converting
// resolution. i out of range or args unusable for the alternative's type
// are definition errors; a factory failure returns a ConstructError and
// no variant.
func (s *Set) At(i int, args ...any) (Variant, error) {
	s.mustInRange("at", i)
	cell, err := s.construct("at", i, args)
	if err != nil {
		return Variant{}, err
	}
	return Variant{set: s, idx: i, cell: cell}, nil
}

// As constructs the alternative of type T in place from args. T must be
// a unique alternative of s.
func As[T any](s *Set, args ...any) (Variant, error) {
	return s.At(indexOf[T]("as", s), args...)
}

// Index returns the discriminant of the live alternative, or Npos when
// the variant is valueless or unbound.
func (v Variant) Index() int {
	if v.cell == nil {
		return Npos
	}
	return v.idx
}

// Valueless reports whether the variant holds no live value.
func (v Variant) Valueless() bool { return v.cell == nil }

// Alternatives returns the set this variant ranges over, or nil for the
// zero Variant.
func (v Variant) Alternatives() *Set { return v.set }

// Clone returns an independent copy: same discriminant, fresh storage
// cell holding a copy of the live value. Payload types containing
// references (slices, maps, pointers) share their referents, as with any
// Go value copy.
func (v Variant) Clone() Variant {
	if v.set == nil || v.cell == nil {
		return Variant{set: v.set, idx: Npos}
	}
	return Variant{set: v.set, idx: v.idx, cell: v.set.cloneCell(v.idx, v.cell)}
}

// Move transfers the live value into the returned variant and leaves the
// receiver valueless.
func (v *Variant) Move() Variant {
	s := v.mustSet("move")
	m := Variant{set: s, idx: v.Index(), cell: v.cell}
	v.idx, v.cell = Npos, nil
	return m
}

// Assign replaces the held value by converting-construction resolution
// over x, with the same selection rules as TryOf.
//
// When x resolves to the currently live alternative the value is replaced
// in place: the old value's Dispose hook is not invoked, and on a factory
// failure the old value stays live. When x resolves to a different
// alternative the old value is destroyed first; if construction then
// fails the variant is left valueless and the failure is returned.
func (v *Variant) Assign(x any) error {
	s := v.mustSet("assign")
	t := operandType("assign", x)
	i := s.resolve("assign", t)
	if i == v.Index() {
		cell, err := s.construct("assign", i, []any{x})
		if err != nil {
			return err
		}
		v.cell = cell
		return nil
	}
	old := v.cell
	v.idx, v.cell = Npos, nil
	dispose(old)
	cell, err := s.construct("assign", i, []any{x})
	if err != nil {
		return err
	}
	v.idx, v.cell = i, cell
	return nil
}

// AssignFrom copies o's discriminant and value into the receiver. Both
// variants must range over the same set. Same-alternative assignment
// replaces the value without invoking the old value's Dispose hook;
// cross-alternative assignment destroys the old value first. Copying
// cannot fail, so this never leaves the receiver valueless unless o is.
func (v *Variant) AssignFrom(o Variant) {
	s := v.mustSet("assign from")
	s.mustSame("assign from", o.set)
	if o.Valueless() {
		v.Reset()
		return
	}
	cell := s.cloneCell(o.idx, o.cell)
	if o.idx == v.Index() {
		v.cell = cell
		return
	}
	old := v.cell
	v.idx, v.cell = Npos, nil
	dispose(old)
	v.idx, v.cell = o.idx, cell
}

// Take moves o's value into the receiver and leaves o valueless. Both
// variants must range over the same set. Same-alternative transfer does
// not invoke the receiver's Dispose hook; cross-alternative transfer
// destroys the receiver's old value first.
func (v *Variant) Take(o *Variant) {
	s := v.mustSet("take")
	s.mustSame("take", o.set)
	if v == o {
		return
	}
	idx, cell := o.Index(), o.cell
	o.idx, o.cell = Npos, nil
	if idx == v.Index() {
		v.cell = cell
		return
	}
	old := v.cell
	v.idx, v.cell = Npos, nil
	dispose(old)
	v.idx, v.cell = idx, cell
}

// Emplace destroys the current value unconditionally and constructs
// alternative i in place from args. On a construction failure the variant
// is left valueless and the failure is returned.
func (v *Variant) Emplace(i int, args ...any) error {
	s := v.mustSet("emplace")
	s.mustInRange("emplace", i)
	old := v.cell
	v.idx, v.cell = Npos, nil
	dispose(old)
	cell, err := s.construct("emplace", i, args)
	if err != nil {
		return err
	}
	v.idx, v.cell = i, cell
	return nil
}

// EmplaceAs is Emplace selecting the alternative by its unique type T.
func EmplaceAs[T any](v *Variant, args ...any) error {
	i := indexOf[T]("emplace", v.set)
	return v.Emplace(i, args...)
}

// Swap exchanges discriminant and storage between two variants of the
// same set. No values are destroyed or copied.
func (v *Variant) Swap(o *Variant) {
	s := v.mustSet("swap")
	s.mustSame("swap", o.set)
	v.idx, o.idx = o.idx, v.idx
	v.cell, o.cell = o.cell, v.cell
}

// Reset destroys the live value, if any, and leaves the variant
// valueless. A no-op on an already-valueless variant.
func (v *Variant) Reset() {
	old := v.cell
	v.idx, v.cell = Npos, nil
	dispose(old)
}

// String formats the variant for diagnostics.
func (v Variant) String() string {
	if v.set == nil {
		return "variant(unbound)"
	}
	if v.cell == nil {
		return "variant(valueless)"
	}
	return fmt.Sprintf("variant(%s=%v)", v.set.altName(v.idx), deref(v.cell))
}

// mustSet panics with a ConfigError when the variant is the zero Variant.
func (v *Variant) mustSet(op string) *Set {
	if v.set == nil {
		panicConfig(op, "variant is not bound to a set")
	}
	return v.set
}

// operandType rejects the operands converting construction must not
// accept: variants themselves (copying routes through Clone/AssignFrom),
// the in-place Seq tag, and untyped nil, which names no alternative.
func operandType(op string, x any) reflect.Type {
	switch x.(type) {
	case Variant, *Variant:
		panicConfig(op, "operand is a Variant; use Clone, AssignFrom or Take")
	case Seq:
		panicConfig(op, "Seq selects in-place construction; use At, As or Emplace")
	case nil:
		panicConfig(op, "untyped nil names no alternative")
	}
	return reflect.TypeOf(x)
}

// deref unboxes a storage cell into the held value.
func deref(cell any) any {
	return reflect.ValueOf(cell).Elem().Interface()
}

// construct builds a fresh storage cell for alternative i from args.
// Factory-backed alternatives delegate to their factory; a factory error
// becomes a ConstructError. Factory-free alternatives accept zero
// arguments (zero value), one convertible argument, or a leading Seq for
// slice and array types; anything else is a definition error.
func (s *Set) construct(op string, i int, args []any) (any, error) {
	a := s.alt(i)
	if a.init != nil {
		val, err := a.init(args)
		if err != nil {
			return nil, &ConstructError{Index: i, Err: err}
		}
		return s.boxValue(a, val), nil
	}
	switch len(args) {
	case 0:
		return reflect.New(a.typ).Interface(), nil
	case 1:
		if seq, ok := args[0].(Seq); ok {
			return s.constructSeq(op, i, a, seq), nil
		}
		return s.boxConvert(op, i, a, args[0]), nil
	default:
		panicConfig(op, "%s takes at most one argument without a factory, got %d",
			a.typ, len(args))
	}
	return nil, nil
}

// boxValue boxes a factory result into a fresh cell of the declared type.
func (s *Set) boxValue(a Alternative, val any) any {
	cell := reflect.New(a.typ)
	if val != nil {
		cell.Elem().Set(reflect.ValueOf(val))
	}
	return cell.Interface()
}

// boxConvert boxes a single constructor argument, converting it to the
// declared type. Inconvertible arguments are definition errors.
func (s *Set) boxConvert(op string, i int, a Alternative, x any) any {
	cell := reflect.New(a.typ)
	if x == nil {
		if !nilable(a.typ.Kind()) {
			panicConfig(op, "%s is not constructible from nil", a.typ)
		}
		return cell.Interface()
	}
	t := reflect.TypeOf(x)
	if !Convertible(t, a.typ) {
		panicConfig(op, "%s is not constructible from %s", a.typ, t)
	}
	cell.Elem().Set(reflect.ValueOf(x).Convert(a.typ))
	return cell.Interface()
}

// constructSeq initializes a slice or array alternative element-wise from
// an initializer sequence.
func (s *Set) constructSeq(op string, i int, a Alternative, seq Seq) any {
	kind := a.typ.Kind()
	if kind != reflect.Slice && kind != reflect.Array {
		panicConfig(op, "%s does not accept an initializer sequence", a.typ)
	}
	if kind == reflect.Array && a.typ.Len() != len(seq) {
		panicConfig(op, "%s requires %d elements, got %d", a.typ, a.typ.Len(), len(seq))
	}
	cell := reflect.New(a.typ)
	dst := cell.Elem()
	if kind == reflect.Slice {
		dst.Set(reflect.MakeSlice(a.typ, len(seq), len(seq)))
	}
	elem := a.typ.Elem()
	for k, x := range seq {
		if x == nil {
			if !nilable(elem.Kind()) {
				panicConfig(op, "element %d: %s is not constructible from nil", k, elem)
			}
			continue
		}
		t := reflect.TypeOf(x)
		if !Convertible(t, elem) {
			panicConfig(op, "element %d: %s is not constructible from %s", k, elem, t)
		}
		dst.Index(k).Set(reflect.ValueOf(x).Convert(elem))
	}
	return cell.Interface()
}

// cloneCell copies a storage cell of alternative i into a fresh one.
func (s *Set) cloneCell(i int, cell any) any {
	nc := reflect.New(s.alt(i).typ)
	nc.Elem().Set(reflect.ValueOf(cell).Elem())
	return nc.Interface()
}

// nilable reports whether the kind has a nil zero state.
func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
