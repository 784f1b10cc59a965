package catalog

import "github.com/hasbyte1/go-underscore/collections"

// FilterByCategory returns the items whose Category equals category, in
// their original order. An empty category keeps every item.
func FilterByCategory[C collections.Collection[Item]](items C, category string) collections.Sequence[Item] {
	if category == "" {
		return collections.Filter(items, func(Item) bool { return true })
	}
	return collections.Filter(items, func(it Item) bool { return it.Category == category })
}

// Total returns the sum of the prices of items, 0 when there are none.
func Total[C collections.Collection[Item]](items C) float64 {
	prices := collections.Map(items, func(it Item) float64 { return it.Price })
	sum := collections.Reduce(prices, func(acc, p float64) float64 { return acc + p }, collections.Some(0.0))
	return sum.OrElse(0)
}

// Categories returns every distinct category in order of first appearance.
func Categories[C collections.Collection[Item]](items C) collections.Sequence[string] {
	return collections.Uniq(collections.Map(items, func(it Item) string { return it.Category }))
}

// Breakdown returns the total of each category, keyed by category in order
// of first appearance.
func Breakdown[C collections.Collection[Item]](items C) *collections.Mapping[float64] {
	entries := collections.Map(Categories(items), func(cat string) collections.Entry[float64] {
		in := collections.Filter(items, func(it Item) bool { return it.Category == cat })
		return collections.Entry[float64]{Key: cat, Value: Total(in)}
	})
	return collections.NewMapping[float64](entries...)
}
