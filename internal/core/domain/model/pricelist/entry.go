// Package pricelist contains the price catalog's domain model: catalog
// entries keyed by article number, with the key normalization shared by the
// catalog adapters.
package pricelist

import (
	"strings"

	"workorder/internal/pkg/errs"
)

// DefaultUnit is used when a catalog entry carries no unit of its own.
const DefaultUnit = "st"

// Entry is one article in the price catalog. It is a value object; two
// entries with the same fields are interchangeable.
type Entry struct {
	key   string
	name  string
	price float64
	unit  string
}

// NewEntry creates a catalog entry. The key is required and is stored in
// normalized form; a blank unit falls back to DefaultUnit and a negative
// price is rejected.
func NewEntry(key, name string, price float64, unit string) (Entry, error) {
	normalized := NormalizeKey(key)
	if normalized == "" {
		return Entry{}, errs.NewValueIsRequiredError("key")
	}
	if price < 0 {
		return Entry{}, errs.NewValueIsInvalidError("price")
	}
	if strings.TrimSpace(unit) == "" {
		unit = DefaultUnit
	}

	return Entry{
		key:   normalized,
		name:  name,
		price: price,
		unit:  unit,
	}, nil
}

// Key returns the normalized article number.
func (e Entry) Key() string {
	return e.key
}

// Name returns the article's display name.
func (e Entry) Name() string {
	return e.name
}

// Price returns the unit price.
func (e Entry) Price() float64 {
	return e.price
}

// Unit returns the unit of measure.
func (e Entry) Unit() string {
	return e.unit
}

// NormalizeKey canonicalizes an article number for lookups: surrounding
// whitespace is trimmed, inner whitespace runs collapse to one space, and
// letters are uppercased. "  em 1234 " and "EM 1234" are the same article.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.Join(strings.Fields(key), " "))
}
