// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides a type-safe closed union: a value holding
// exactly one alternative out of a fixed, ordered set of types, with
// failure-aware accessors and capability-complete visitation.
//
// # Architecture
//
//   - Registry: [NewSet] fixes the ordered alternative list at definition
//     time; position, uniqueness and conversion resolution are pure lookups
//     over it. Contract violations panic with a [ConfigError] before any
//     value is touched.
//   - Storage: a [Variant] is a (discriminant, cell) pair holding at most
//     one live value. Mutators install fresh cells, so struct copies stay
//     independent; [GetIf] is the single in-place-mutation door.
//   - Failure model: a failed in-place construction during assignment or
//     emplacement leaves the variant valueless ([Npos]) and returns a
//     [ConstructError]; later mutation recovers it. Accessors against the
//     wrong alternative return an [AccessError], never a garbage value.
//
// # API Topologies
//
//   - Construction: [Set.Zero], [Set.Of] / [Set.TryOf] (converting),
//     [Set.At] (by index), [As] (by type), each accepting a leading [Seq]
//     initializer sequence.
//   - Mutation: [Variant.Assign], [Variant.AssignFrom], [Variant.Take],
//     [Variant.Emplace] / [EmplaceAs], [Variant.Swap], [Variant.Reset].
//   - Access: [Get], [GetIf], [GetAt], [GetIfAt], [Extract], [Holds].
//   - Dispatch: [Visitor] over one variant, [MultiVisitor] over the cross
//     product of several; both verify exhaustiveness at Build time.
//   - Relational: [Equal], [Compare], [Less] — lexicographic on
//     (discriminant, value); [Monostate] compares equal always.
//
// # Integration
//
//   - [Pair], [ToEither] and [FromEither] bridge two-alternative variants
//     to [code.hybscloud.com/kont.Either] for effectful pipelines.
//   - Values implementing [Disposer] get their hook invoked exactly once
//     whenever the holding variant tears them down.
//
// Variants are plain values with no internal synchronization: concurrent
// mutation of one instance needs external locking, concurrent reads of an
// unmutated instance are safe.
//
// # Example
//
//	set := variant.NewSet(variant.AltOrdered[int](), variant.AltOrdered[string]())
//	v := set.Zero()                  // holds int(0)
//	_ = v.Assign("abc")              // now holds string
//	s, _ := variant.Get[string](v)   // "abc"
//	vis := variant.NewVisitor[string](set)
//	variant.Case(vis, func(n int) string { return "int" })
//	variant.Case(vis, func(s string) string { return "string" })
//	kind, _ := variant.Visit(vis.Build(), v) // "string"
package variant
