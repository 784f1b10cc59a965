package collections

// Option is a value that may be absent. It is how the toolkit says "no
// value": [Reduce] takes one as its seed and returns one as its result.
//
// Using a wrapper instead of a zero value keeps "nothing supplied" apart
// from "the zero value supplied":
//
//	collections.Reduce(s, add, collections.None[int]()) // seed from s[0]
//	collections.Reduce(s, add, collections.Some(0))     // seed with 0
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// OrElse returns the held value, or def when o is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
