package ports

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
)

// EntryRepository defines the persistence contract for a work order's line
// items. Entries are stored per order as an ordered list; saving always
// replaces the full list, so the stored rows mirror the ledger the user
// last saved.
type EntryRepository interface {
	// ReplaceTimeEntries replaces the stored time entries of a work order
	// with the given rows, preserving their order.
	ReplaceTimeEntries(ctx context.Context, orderID kernel.UUID, entries []ledger.TimeEntry) error

	// ReplaceMaterialEntries replaces the stored material entries of a work
	// order with the given rows, preserving their order.
	ReplaceMaterialEntries(ctx context.Context, orderID kernel.UUID, entries []ledger.MaterialEntry) error

	// GetTimeEntries retrieves a work order's time entries in stored order.
	GetTimeEntries(ctx context.Context, orderID kernel.UUID) ([]ledger.TimeEntry, error)

	// GetMaterialEntries retrieves a work order's material entries in stored
	// order.
	GetMaterialEntries(ctx context.Context, orderID kernel.UUID) ([]ledger.MaterialEntry, error)
}
