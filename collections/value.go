package collections

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// FromValue inspects v at runtime and returns it as a Collection[any].
//
//   - A slice or array becomes a [Sequence][any] (elements copied).
//   - A map whose key kind is string becomes a *[Mapping][any] with keys
//     in lexical order.
//   - A Sequence[any] or *Mapping[any] is returned as is.
//
// Any other value, including nil, fails with [ErrInvalidArgument]. Values
// are never converted: a []int yields a Sequence[any] holding int values.
//
// FromValue is the entry point for untyped data such as the output of
// json.Unmarshal into an any.
func FromValue(v any) (Collection[any], error) {
	switch col := v.(type) {
	case Sequence[any]:
		return col, nil
	case *Mapping[any]:
		return col, nil
	case []any:
		return SequenceOf(col), nil
	case map[string]any:
		return MappingOf(col), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(Sequence[any], rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s is not a string", ErrInvalidArgument, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			values[k] = iter.Value().Interface()
		}
		slices.Sort(keys)
		return &Mapping[any]{keys: keys, values: values}, nil
	case reflect.Invalid:
		return nil, fmt.Errorf("%w: nil is not a collection", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: %T is not a collection", ErrInvalidArgument, v)
	}
}
