package collections

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Shape identifies which side of the [Collection] union a value is on.
type Shape int

const (
	// ShapeSequence is an ordered, 0-indexed [Sequence].
	ShapeSequence Shape = iota + 1

	// ShapeMapping is a string-keyed [Mapping].
	ShapeMapping
)

// String returns "sequence" or "mapping".
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Collection is the union of the two shapes every operation accepts:
// [Sequence][T] and *[Mapping][T].
//
// The interface is sealed; no other type can satisfy it. Which shape a value
// has is decided once, inside [Each], and nowhere else.
//
// Operations take the concrete collection type as a type parameter
// constrained by Collection, so both shapes are accepted without conversion:
//
//	collections.Filter(collections.Of(1, 2, 3), isOdd)
//	collections.Filter(collections.MappingOf(scores), isOdd)
type Collection[T any] interface {
	// Len returns the number of elements a traversal visits.
	Len() int

	// Shape reports whether the collection is a Sequence or a Mapping.
	Shape() Shape

	// element ties an implementation to its element type.
	element(T)
}

// Sequence is an ordered, 0-indexed, finite collection of T.
//
// Sequence is a plain slice type, so slice literals and conversions work
// directly:
//
//	s := collections.Sequence[int]{1, 2, 3}
//	s := collections.Sequence[string](names)
//
// Operations never modify a Sequence they are given; every Sequence they
// return is freshly allocated.
type Sequence[T any] []T

// Of creates a Sequence from a variadic list of items (copied).
func Of[T any](items ...T) Sequence[T] {
	return SequenceOf(items)
}

// SequenceOf creates a Sequence from a slice (the slice is copied).
func SequenceOf[T any](items []T) Sequence[T] {
	dst := make(Sequence[T], len(items))
	copy(dst, items)
	return dst
}

// Len returns the number of items.
func (s Sequence[T]) Len() int { return len(s) }

// Shape always returns [ShapeSequence].
func (s Sequence[T]) Shape() Shape { return ShapeSequence }

// Slice returns a copy of the items as a plain Go slice.
func (s Sequence[T]) Slice() []T { return slices.Clone([]T(s)) }

func (Sequence[T]) element(T) {}

// Key is the position handed to an [Each] iterator: an integer index when
// walking a Sequence, a string key when walking a Mapping.
type Key struct {
	index int
	name  string
	named bool
}

// IndexKey returns the Key for position i of a Sequence.
func IndexKey(i int) Key { return Key{index: i} }

// NameKey returns the Key for key name of a Mapping.
func NameKey(name string) Key { return Key{index: -1, name: name, named: true} }

// IsIndex reports whether k is a Sequence position.
func (k Key) IsIndex() bool { return !k.named }

// Index returns the Sequence position, or -1 for a Mapping key.
func (k Key) Index() int { return k.index }

// Name returns the Mapping key, or "" for a Sequence position.
func (k Key) Name() string { return k.name }

// String returns the index in decimal or the key name.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}
