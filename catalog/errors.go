package catalog

import "errors"

var (
	// ErrInvalidConfig is returned by [New] when the locale or currency in
	// [Config] cannot be parsed.
	ErrInvalidConfig = errors.New("catalog: invalid config")

	// ErrInvalidItem is returned by [ItemsFromValue] when an element is not
	// an object with a numeric price.
	ErrInvalidItem = errors.New("catalog: invalid item")
)
