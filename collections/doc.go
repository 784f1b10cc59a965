// Package collections provides a small, generic toolkit of pure functions
// for iterating, filtering, transforming, de-duplicating, searching and
// folding collections.
//
// # Collection shapes
//
// Every operation that walks its input accepts either shape of
// [Collection]:
//
//   - [Sequence][T], an ordered, 0-indexed slice type;
//   - *[Mapping][T], an immutable string-keyed map that remembers its key
//     order.
//
// [Each] is the single place where the shape is examined. Everything else
// is layered on top of it:
//
//	evens := collections.Filter(collections.Of(1, 2, 3, 4), func(n int) bool {
//	    return n%2 == 0
//	}) // → [2 4]
//
//	found := collections.Contains(collections.NewMapping(
//	    collections.Entry[int]{Key: "a", Value: 1},
//	    collections.Entry[int]{Key: "b", Value: 2},
//	), 1) // → true
//
// # Immutability
//
// No operation modifies its input. Every operation that produces a
// collection returns a freshly allocated [Sequence], even when nothing was
// removed.
//
// # Absent values
//
// [First] and [Last] report absence with a second bool result, as Go map
// lookups do. [Reduce] uses [Option] both for its seed and its result, so
// "no seed" and "a zero-valued seed" remain distinct.
//
// # Misuse
//
// The toolkit trusts its caller. A nil callback or a nil Collection panics
// in the caller's goroutine; nothing is recovered or silently coerced. Use
// [FromValue] to turn untyped data into a Collection with an error instead.
package collections
