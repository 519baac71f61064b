// Package ledger implements the line-item ledgers of a work order: the rows
// of time spent and material consumed that make up the order's cost.
//
// A Ledger is a generic ordered collection of entries plus a running
// aggregate total. Every mutation recalculates the affected row's total and
// the aggregate in the same step, so the totals can never drift from the row
// data no matter the order of edits.
//
// Entries are value types: field edits produce a new entry rather than
// mutating in place. Numeric fields are edited as free text; input that does
// not parse as a non-negative amount is coerced to zero instead of being
// rejected, matching the forgiving behavior of a grid editor. Both "3.5" and
// "3,5" are accepted.
package ledger
