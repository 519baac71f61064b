// Package session implements the interactive editing of a work order's line
// items: an EditSession that keeps both ledgers consistent while the user
// types, and a MaterialLookup that searches the price catalog by article-key
// prefix without blocking the edit.
//
// Catalog searches are debounced per row, so a burst of keystrokes costs one
// request. Because a search can finish after the user has moved on, its
// result is presented only while the same order is still loaded, the row
// still exists, and the row's article key still reads as the queried prefix.
// Edits to other rows or fields leave an in-flight search valid; a stale
// result is dropped, never presented for the wrong row.
package session
