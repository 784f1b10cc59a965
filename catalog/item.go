package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underscore/collections"
)

// Item is one priced entry of the list.
type Item struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ItemsFromValue builds items from untyped data, typically the result of
// json.Unmarshal into an any. v may be an array of objects or an object
// whose values are objects; in the latter case items follow the lexical
// order of its keys.
//
// Every object needs a numeric "price". "name" and "category" are optional
// but must be strings when present.
func ItemsFromValue(v any) (collections.Sequence[Item], error) {
	c, err := collections.FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading items: %w", err)
	}
	items := make(collections.Sequence[Item], 0, c.Len())
	for k, raw := range collections.All(c) {
		item, err := itemFromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidItem, k, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromValue(raw any) (Item, error) {
	c, err := collections.FromValue(raw)
	if err != nil {
		return Item{}, err
	}
	fields, ok := c.(*collections.Mapping[any])
	if !ok {
		return Item{}, fmt.Errorf("got a %s, want an object", c.Shape())
	}

	var item Item
	if item.Name, err = optionalString(fields, "name"); err != nil {
		return Item{}, err
	}
	if item.Category, err = optionalString(fields, "category"); err != nil {
		return Item{}, err
	}

	price, ok := fields.Get("price")
	if !ok {
		return Item{}, fmt.Errorf("missing price")
	}
	switch p := price.(type) {
	case float64:
		item.Price = p
	case int:
		item.Price = float64(p)
	case json.Number:
		if item.Price, err = p.Float64(); err != nil {
			return Item{}, fmt.Errorf("price: %w", err)
		}
	default:
		return Item{}, fmt.Errorf("price is a %T, want a number", price)
	}
	return item, nil
}

func optionalString(fields *collections.Mapping[any], key string) (string, error) {
	v, ok := fields.Get(key)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s is a %T, want a string", key, v)
	}
	return s, nil
}
