package catalog

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hasbyte1/go-underscore/collections"
)

// Dashboard turns an item list and a category selection into the figures a
// page displays. It holds no item state; one Dashboard can serve any number
// of lists.
type Dashboard struct {
	cfg     Config
	unit    currency.Unit
	printer *message.Printer
}

// Summary is what a page renders for one category selection.
type Summary struct {
	// Category is the selection as given to [Dashboard.Render].
	Category string

	// Items are the visible items, in list order.
	Items collections.Sequence[Item]

	// Total is the sum of the visible prices.
	Total float64

	// FormattedTotal is Total formatted for the configured locale and
	// currency.
	FormattedTotal string

	// Fingerprint identifies the visible content. Two summaries with the
	// same fingerprint render identically, so a caller may skip the redraw.
	Fingerprint string
}

// New validates cfg and returns a Dashboard. Empty fields take their
// [DefaultConfig] values.
func New(cfg Config) (*Dashboard, error) {
	cfg = cfg.withDefaults()

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, cfg.Locale, err)
	}
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q: %w", ErrInvalidConfig, cfg.Currency, err)
	}
	return &Dashboard{
		cfg:     cfg,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (d *Dashboard) Config() Config { return d.cfg }

// FormatTotal formats amount with the currency symbol of the configured
// locale, e.g. "$ 19.75".
func (d *Dashboard) FormatTotal(amount float64) string {
	return d.printer.Sprintf("%v", currency.Symbol(d.unit.Amount(amount)))
}

// Render computes the summary for category. Selecting Config.AllCategories
// or "" shows every item.
func (d *Dashboard) Render(items collections.Sequence[Item], category string) Summary {
	selected := category
	if selected == d.cfg.AllCategories {
		selected = ""
	}
	visible := FilterByCategory(items, selected)
	total := Total(visible)
	return Summary{
		Category:       category,
		Items:          visible,
		Total:          total,
		FormattedTotal: d.FormatTotal(total),
		Fingerprint:    fingerprint(category, visible),
	}
}

// fingerprint hashes the selection and every visible field. Fields are
// NUL-terminated so that adjacent values cannot run into each other.
func fingerprint(category string, items collections.Sequence[Item]) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes is rejected.
		panic(err)
	}
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	write(category)
	collections.Each(items, func(it Item, _ collections.Key, _ collections.Sequence[Item]) {
		write(it.Name)
		write(it.Category)
		write(strconv.FormatFloat(it.Price, 'g', -1, 64))
	})
	return hex.EncodeToString(h.Sum(nil))
}
