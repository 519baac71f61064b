package ledger

import (
	"workorder/internal/core/domain/model/pricelist"
)

// MaterialField identifies an editable field of a MaterialEntry.
type MaterialField int

const (
	// MaterialFieldArticleKey is the price catalog article number.
	MaterialFieldArticleKey MaterialField = iota
	// MaterialFieldDescription is the free-text description of the material.
	MaterialFieldDescription
	// MaterialFieldQuantity is the consumed quantity.
	MaterialFieldQuantity
	// MaterialFieldUnit is the unit of measure.
	MaterialFieldUnit
	// MaterialFieldPrice is the unit price in the order's currency.
	MaterialFieldPrice
)

// MaterialEntry is one row of material consumed on a work order. Its total
// is quantity times price.
type MaterialEntry struct {
	articleKey  string
	description string
	quantity    float64
	unit        string
	price       float64
	total       float64
}

// NewMaterialEntry creates a material entry from grid text. Quantity and
// price are parsed leniently; unparseable input becomes zero.
func NewMaterialEntry(articleKey, description, quantity, unit, price string) MaterialEntry {
	return MaterialEntry{
		articleKey:  articleKey,
		description: description,
		quantity:    parseAmount(quantity),
		unit:        unit,
		price:       parseAmount(price),
	}.Recalculate()
}

// RestoreMaterialEntry rehydrates a material entry from stored values.
func RestoreMaterialEntry(articleKey, description string, quantity float64, unit string, price float64) MaterialEntry {
	return MaterialEntry{
		articleKey:  articleKey,
		description: description,
		quantity:    quantity,
		unit:        unit,
		price:       price,
	}.Recalculate()
}

func (e MaterialEntry) ArticleKey() string  { return e.articleKey }
func (e MaterialEntry) Description() string { return e.description }
func (e MaterialEntry) Quantity() float64   { return e.quantity }
func (e MaterialEntry) Unit() string        { return e.unit }
func (e MaterialEntry) Price() float64      { return e.price }

// Apply returns a copy with one field set from raw text.
func (e MaterialEntry) Apply(field MaterialField, raw string) MaterialEntry {
	switch field {
	case MaterialFieldArticleKey:
		e.articleKey = raw
	case MaterialFieldDescription:
		e.description = raw
	case MaterialFieldQuantity:
		e.quantity = parseAmount(raw)
	case MaterialFieldUnit:
		e.unit = raw
	case MaterialFieldPrice:
		e.price = parseAmount(raw)
	}
	return e
}

// WithCatalogEntry returns a copy with the description, unit, and price
// filled in from a price catalog entry. The article key and quantity the
// user typed stay untouched.
func (e MaterialEntry) WithCatalogEntry(entry pricelist.Entry) MaterialEntry {
	e.description = entry.Name()
	e.unit = entry.Unit()
	e.price = entry.Price()
	return e
}

// Recalculate returns a copy with the row total refreshed.
func (e MaterialEntry) Recalculate() MaterialEntry {
	e.total = e.quantity * e.price
	return e
}

// Total returns the row total (quantity times price).
func (e MaterialEntry) Total() float64 {
	return e.total
}
