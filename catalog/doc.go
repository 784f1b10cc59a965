// Package catalog computes the derived figures a storefront-style page shows
// for a list of priced items: the items visible under a selected category,
// their total, a per-category breakdown and a locale-aware money string.
//
// Everything here is built from the collections toolkit and is pure; DOM
// queries, event wiring and rendering stay with the caller:
//
//	d, err := catalog.New(catalog.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	summary := d.Render(items, selected)
//	if summary.Fingerprint != lastFingerprint {
//	    show(summary.FormattedTotal, summary.Items)
//	}
package catalog
