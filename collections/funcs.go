package collections

import (
	"fmt"
	"iter"
)

// This file contains the toolkit operations. They are package-level generic
// functions rather than methods because most of them either accept both
// collection shapes or change the element type, and Go methods cannot
// introduce type parameters.
//
// Layering: Each is the only traversal. Filter, Map, Fold and UniqBy are
// built on it and IndexOf and Contains on its early-exit form; Reject is
// built on Filter, Reduce on Fold and Uniq on UniqBy. First and Last slice
// a Sequence directly.

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) once for every element of c, in order.
//
// For a [Sequence] key is the integer position 0 … Len()-1. For a [Mapping]
// key is the string key, visited in the mapping's key order.
//
// Each panics with an error wrapping [ErrInvalidArgument] when c is a nil
// Collection interface.
func Each[C Collection[T], T any](c C, fn func(value T, key Key, c C)) {
	visit(c, func(v T, k Key) bool {
		fn(v, k, c)
		return true
	})
}

// All returns an iterator over the (key, value) pairs [Each] would visit.
//
//	for k, v := range collections.All(m) {
//	    fmt.Println(k, v)
//	}
func All[C Collection[T], T any](c C) iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		visit(c, func(v T, k Key) bool { return yield(k, v) })
	}
}

// visit resolves the shape of c and walks it until fn returns false.
func visit[C Collection[T], T any](c C, fn func(T, Key) bool) {
	switch col := any(c).(type) {
	case Sequence[T]:
		for i := 0; i < len(col); i++ {
			if !fn(col[i], IndexKey(i)) {
				return
			}
		}
	case *Mapping[T]:
		if col == nil {
			return
		}
		for _, k := range col.keys {
			if !fn(col.values[k], NameKey(k)) {
				return
			}
		}
	default:
		panic(fmt.Errorf("%w: cannot iterate %T", ErrInvalidArgument, c))
	}
}

// sizeHint returns c.Len(), or 0 for a nil Collection interface so that the
// nil check is left to visit.
func sizeHint[C Collection[T], T any](c C) int {
	if any(c) == nil {
		return 0
	}
	return c.Len()
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item of s.
// Returns the zero value and false when s is empty.
func First[T any](s Sequence[T]) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[0], true
}

// FirstN returns a new Sequence holding the first n items of s.
// n is clamped to Len(); n <= 0 yields an empty Sequence.
func FirstN[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return Sequence[T]{}
	}
	if n > len(s) {
		n = len(s)
	}
	return SequenceOf(s[:n])
}

// Last returns the last item of s.
// Returns the zero value and false when s is empty.
func Last[T any](s Sequence[T]) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[len(s)-1], true
}

// LastN returns a new Sequence holding the last n items of s.
// n is clamped to Len(); n <= 0 yields an empty Sequence.
func LastN[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return Sequence[T]{}
	}
	if n > len(s) {
		n = len(s)
	}
	return SequenceOf(s[len(s)-n:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the position of the first item equal to target, or -1.
func IndexOf[T comparable](s Sequence[T], target T) int {
	found := -1
	visit(s, func(v T, k Key) bool {
		if v == target {
			found = k.Index()
			return false
		}
		return true
	})
	return found
}

// Contains reports whether any element of c equals target.
// Mapping values are searched; keys are not.
func Contains[C Collection[T], T comparable](c C, target T) bool {
	found := false
	visit(c, func(v T, _ Key) bool {
		found = v == target
		return !found
	})
	return found
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new Sequence holding, in traversal order, every element
// of c for which pred returns true.
func Filter[C Collection[T], T any](c C, pred func(T) bool) Sequence[T] {
	out := make(Sequence[T], 0, sizeHint(c))
	Each(c, func(v T, _ Key, _ C) {
		if pred(v) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns the elements of c for which pred returns false.
// It is the complement of [Filter].
func Reject[C Collection[T], T any](c C, pred func(T) bool) Sequence[T] {
	return Filter(c, func(v T) bool { return !pred(v) })
}

// Map returns a new Sequence of transform(value) for every element of c, in
// traversal order. Unlike [Each], transform sees only the value.
//
//	doubled := collections.Map(collections.Of(1, 2, 3),
//	    func(n int) int { return n * 2 }) // → [2 4 6]
func Map[C Collection[T], T, U any](c C, transform func(T) U) Sequence[U] {
	out := make(Sequence[U], 0, sizeHint(c))
	Each(c, func(v T, _ Key, _ C) {
		out = append(out, transform(v))
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new Sequence keeping the first occurrence of every distinct
// item of s, in original order.
//
//	collections.Uniq(collections.Of(1, 2, 2, 3, 1)) // → [1 2 3]
func Uniq[T comparable](s Sequence[T]) Sequence[T] {
	return UniqBy(s, func(v T) T { return v })
}

// UniqBy is like [Uniq] but compares the keys extracted by key instead of
// the items themselves.
func UniqBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[T] {
	seen := make(map[K]struct{}, len(s))
	out := make(Sequence[T], 0, len(s))
	Each(s, func(v T, _ Key, _ Sequence[T]) {
		k := key(v)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, v)
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold combines the elements of c into a single value of type A, starting
// from initial and calling combine(acc, value) for every element.
//
//	total := collections.Fold(prices,
//	    func(acc float64, p float64) float64 { return acc + p }, 0)
func Fold[C Collection[T], T, A any](c C, combine func(acc A, item T) A, initial A) A {
	acc := initial
	Each(c, func(v T, _ Key, _ C) {
		acc = combine(acc, v)
	})
	return acc
}

// Reduce folds c into a single T.
//
// With initial set, combine runs for every element starting with
// combine(initial, first). With [None], the first element becomes the
// accumulator without a call to combine. Reducing an empty collection
// returns initial unchanged, so an empty c with None yields None.
//
//	sum := collections.Reduce(collections.Of(1, 2, 3),
//	    func(acc, n int) int { return acc + n }, collections.None[int]())
//	// sum.Get() → 6, true
func Reduce[C Collection[T], T any](c C, combine func(acc, item T) T, initial Option[T]) Option[T] {
	return Fold(c, func(acc Option[T], item T) Option[T] {
		if !acc.ok {
			return Some(item)
		}
		return Some(combine(acc.value, item))
	}, initial)
}
