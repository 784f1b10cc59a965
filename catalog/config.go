package catalog

// Config holds the presentation settings of a [Dashboard].
type Config struct {
	// Locale is the BCP 47 tag used when formatting totals.
	// Defaults to "en-US".
	Locale string

	// Currency is the ISO 4217 code totals are expressed in.
	// Defaults to "USD".
	Currency string

	// AllCategories is the category selection that shows every item,
	// typically the value of an "All" radio button. Defaults to "all".
	AllCategories string
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale:        "en-US",
		Currency:      "USD",
		AllCategories: "all",
	}
}

// withDefaults fills every empty field from [DefaultConfig].
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	if c.AllCategories == "" {
		c.AllCategories = def.AllCategories
	}
	return c
}
