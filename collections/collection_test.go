package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) collections.Sequence[int] { return collections.Of(ns...) }

func abc() *collections.Mapping[string] {
	return collections.NewMapping(
		collections.Entry[string]{Key: "a", Value: "ant"},
		collections.Entry[string]{Key: "b", Value: "bat"},
		collections.Entry[string]{Key: "c", Value: "cat"},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

func TestOf(t *testing.T) {
	s := collections.Of(1, 2, 3)
	assert.Equal(t, collections.Sequence[int]{1, 2, 3}, s)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, collections.ShapeSequence, s.Shape())
}

func TestSequenceOfCopies(t *testing.T) {
	src := []string{"a", "b", "c"}
	s := collections.SequenceOf(src)
	src[0] = "z"
	assert.Equal(t, "a", s[0], "SequenceOf must copy its input")
}

func TestSequenceSliceCopies(t *testing.T) {
	s := ints(1, 2, 3)
	out := s.Slice()
	out[0] = 99
	assert.Equal(t, 1, s[0])
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

func TestNewMappingKeepsInsertionOrder(t *testing.T) {
	m := collections.NewMapping(
		collections.Entry[int]{Key: "z", Value: 1},
		collections.Entry[int]{Key: "a", Value: 2},
		collections.Entry[int]{Key: "m", Value: 3},
	)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, collections.ShapeMapping, m.Shape())
}

func TestNewMappingDuplicateKeys(t *testing.T) {
	m := collections.NewMapping(
		collections.Entry[int]{Key: "a", Value: 1},
		collections.Entry[int]{Key: "b", Value: 2},
		collections.Entry[int]{Key: "a", Value: 3},
	)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMappingOfSortsKeys(t *testing.T) {
	m := collections.MappingOf(map[string]int{"b": 2, "c": 3, "a": 1})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMappingGetHas(t *testing.T) {
	m := abc()
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "bat", v)

	_, ok = m.Get("x")
	assert.False(t, ok)
	assert.True(t, m.Has("c"))
	assert.False(t, m.Has("x"))
}

func TestMappingWithDoesNotMutate(t *testing.T) {
	m := abc()
	n := m.With("d", "dog").With("a", "ape")

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	a, _ := m.Get("a")
	assert.Equal(t, "ant", a)

	assert.Equal(t, []string{"a", "b", "c", "d"}, n.Keys())
	a, _ = n.Get("a")
	assert.Equal(t, "ape", a)
}

func TestMappingKeysCopies(t *testing.T) {
	m := abc()
	keys := m.Keys()
	keys[0] = "zzz"
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMappingEntries(t *testing.T) {
	got := abc().Entries()
	require.Len(t, got, 3)
	assert.Equal(t, collections.Entry[string]{Key: "b", Value: "bat"}, got[1])
	assert.Equal(t, "b: bat", got[1].String())
}

func TestNilMapping(t *testing.T) {
	var m *collections.Mapping[int]
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	assert.Empty(t, m.Entries())
	assert.False(t, m.Has("a"))
	assert.Equal(t, "{}", m.String())

	with := m.With("a", 1)
	assert.Equal(t, []string{"a"}, with.Keys())
}

func TestMappingJSON(t *testing.T) {
	m := collections.NewMapping(
		collections.Entry[int]{Key: "b", Value: 2},
		collections.Entry[int]{Key: "a", Value: 1},
	)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(b))
	assert.Equal(t, `{"b":2,"a":1}`, m.String())
}

func TestMappingJSONError(t *testing.T) {
	m := collections.NewMapping(collections.Entry[any]{Key: "f", Value: func() {}})
	_, err := m.MarshalJSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"f"`)
}

// ─────────────────────────────────────────────────────────────────────────────
// Key / Shape / Option
// ─────────────────────────────────────────────────────────────────────────────

func TestKey(t *testing.T) {
	i := collections.IndexKey(2)
	assert.True(t, i.IsIndex())
	assert.Equal(t, 2, i.Index())
	assert.Equal(t, "", i.Name())
	assert.Equal(t, "2", i.String())

	n := collections.NameKey("price")
	assert.False(t, n.IsIndex())
	assert.Equal(t, -1, n.Index())
	assert.Equal(t, "price", n.Name())
	assert.Equal(t, "price", n.String())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "sequence", collections.ShapeSequence.String())
	assert.Equal(t, "mapping", collections.ShapeMapping.String())
	assert.Equal(t, "Shape(0)", collections.Shape(0).String())
}

func TestOption(t *testing.T) {
	some := collections.Some(0)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, some.IsSome())
	assert.Equal(t, 0, some.OrElse(7))

	none := collections.None[int]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.False(t, none.IsSome())
	assert.Equal(t, 7, none.OrElse(7))
}

// ─────────────────────────────────────────────────────────────────────────────
// FromValue
// ─────────────────────────────────────────────────────────────────────────────

func TestFromValueSlice(t *testing.T) {
	c, err := collections.FromValue([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, collections.ShapeSequence, c.Shape())
	assert.Equal(t, collections.Sequence[any]{1, 2, 3}, c)
}

func TestFromValueArray(t *testing.T) {
	c, err := collections.FromValue([2]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, collections.Sequence[any]{"x", "y"}, c)
}

func TestFromValueMap(t *testing.T) {
	c, err := collections.FromValue(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	require.Equal(t, collections.ShapeMapping, c.Shape())

	m := c.(*collections.Mapping[any])
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, 2, v)
}

func TestFromValueNamedStringKeys(t *testing.T) {
	type code string
	c, err := collections.FromValue(map[code]bool{"x": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, c.(*collections.Mapping[any]).Keys())
}

func TestFromValueJSON(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":[1,2]}`), &decoded))

	c, err := collections.FromValue(decoded)
	require.NoError(t, err)
	assert.True(t, collections.Contains(c, any(float64(1))))

	m := c.(*collections.Mapping[any])
	inner, err := collections.FromValue(m.Entries()[1].Value)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Len())
}

func TestFromValuePassThrough(t *testing.T) {
	s := collections.Sequence[any]{1}
	c, err := collections.FromValue(s)
	require.NoError(t, err)
	assert.Equal(t, s, c)

	m := collections.NewMapping(collections.Entry[any]{Key: "k", Value: 1})
	c, err = collections.FromValue(m)
	require.NoError(t, err)
	assert.Same(t, m, c)
}

func TestFromValueRejects(t *testing.T) {
	for name, v := range map[string]any{
		"nil":        nil,
		"int":        42,
		"string":     "abc",
		"struct":     struct{ A int }{1},
		"int keys":   map[int]string{1: "a"},
		"func value": func() {},
	} {
		t.Run(name, func(t *testing.T) {
			c, err := collections.FromValue(v)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, collections.ErrInvalidArgument)
		})
	}
}
