package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/pkg/guard"
)

var ErrSaveMaterialEntriesCommandIsNotConstructed = errors.New(
	"SaveMaterialEntriesCommand must be created via NewSaveMaterialEntriesCommand constructor",
)

// SaveMaterialEntriesCommand represents a request to replace a work order's
// stored material rows with the rows the user is looking at. An empty list
// clears the ledger.
type SaveMaterialEntriesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	entries []ledger.MaterialEntry

	guard guard.ConstructorGuard
}

// NewSaveMaterialEntriesCommand creates a command to save a work order's
// material rows.
func NewSaveMaterialEntriesCommand(
	orderID kernel.UUID,
	entries []ledger.MaterialEntry,
) (SaveMaterialEntriesCommand, error) {
	cmd := SaveMaterialEntriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SaveMaterialEntriesCommand{}, err
	}
	cmd.entries = entries

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveMaterialEntriesCommand) Validate() error {
	return c.guard.Validate(ErrSaveMaterialEntriesCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order the rows belong to.
func (c SaveMaterialEntriesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Entries returns the rows to store, in ledger order.
func (c SaveMaterialEntriesCommand) Entries() []ledger.MaterialEntry {
	return c.entries
}

func (c *SaveMaterialEntriesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
