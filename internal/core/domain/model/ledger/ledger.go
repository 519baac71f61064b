package ledger

// Item is an immutable ledger row. Apply returns a copy with one field set
// from raw text, Recalculate returns a copy with the row total refreshed
// from the row's fields, and Total reports the current row total.
type Item[T any, F comparable] interface {
	Apply(field F, raw string) T
	Recalculate() T
	Total() float64
}

// Ledger is an ordered collection of line items with an always-consistent
// aggregate total. The total is recomputed from the rows after every
// mutation, so it stays the exact sum of the row totals no matter how long
// the edit sequence runs. Index-based operations on rows that do not exist
// are silent no-ops, so callers racing a removal never corrupt the ledger.
//
// Ledger is not safe for concurrent use; the editing session serializes
// access to it.
type Ledger[T Item[T, F], F comparable] struct {
	items          []T
	aggregateTotal float64
}

// NewLedger creates an empty ledger.
func NewLedger[T Item[T, F], F comparable]() *Ledger[T, F] {
	return &Ledger[T, F]{}
}

// Append adds an item at the end of the ledger. The item's total is
// recalculated on the way in.
func (l *Ledger[T, F]) Append(item T) {
	l.items = append(l.items, item.Recalculate())
	l.recompute()
}

// UpdateField sets one field of the item at index from raw text and
// recalculates. Out-of-range indexes are ignored.
func (l *Ledger[T, F]) UpdateField(index int, field F, raw string) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.replaceAt(index, l.items[index].Apply(field, raw))
}

// UpdateItem replaces the item at index with apply's result, letting callers
// change several fields in one step. Out-of-range indexes are ignored.
func (l *Ledger[T, F]) UpdateItem(index int, apply func(T) T) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.replaceAt(index, apply(l.items[index]))
}

// RemoveAt removes the item at index. Out-of-range indexes are ignored.
func (l *Ledger[T, F]) RemoveAt(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.recompute()
}

// ReplaceAll discards the current items and loads the given ones, typically
// rows read back from the store. Each item is recalculated on the way in.
func (l *Ledger[T, F]) ReplaceAll(items []T) {
	l.items = make([]T, 0, len(items))
	for _, item := range items {
		l.items = append(l.items, item.Recalculate())
	}
	l.recompute()
}

// Get returns the item at index and whether it exists.
func (l *Ledger[T, F]) Get(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

// Snapshot returns a copy of the items in ledger order.
func (l *Ledger[T, F]) Snapshot() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *Ledger[T, F]) Len() int {
	return len(l.items)
}

// AggregateTotal returns the sum of all row totals.
func (l *Ledger[T, F]) AggregateTotal() float64 {
	return l.aggregateTotal
}

func (l *Ledger[T, F]) replaceAt(index int, item T) {
	l.items[index] = item.Recalculate()
	l.recompute()
}

func (l *Ledger[T, F]) recompute() {
	var sum float64
	for _, item := range l.items {
		sum += item.Total()
	}
	l.aggregateTotal = sum
}
