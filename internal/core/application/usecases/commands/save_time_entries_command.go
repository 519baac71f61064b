package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/pkg/guard"
)

var ErrSaveTimeEntriesCommandIsNotConstructed = errors.New(
	"SaveTimeEntriesCommand must be created via NewSaveTimeEntriesCommand constructor",
)

// SaveTimeEntriesCommand represents a request to replace a work order's
// stored time rows with the rows the user is looking at. An empty list
// clears the ledger.
type SaveTimeEntriesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	entries []ledger.TimeEntry

	guard guard.ConstructorGuard
}

// NewSaveTimeEntriesCommand creates a command to save a work order's time
// rows. Row totals were already computed by the ledger; the store keeps
// them as given.
func NewSaveTimeEntriesCommand(
	orderID kernel.UUID,
	entries []ledger.TimeEntry,
) (SaveTimeEntriesCommand, error) {
	cmd := SaveTimeEntriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SaveTimeEntriesCommand{}, err
	}
	cmd.entries = entries

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveTimeEntriesCommand) Validate() error {
	return c.guard.Validate(ErrSaveTimeEntriesCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order the rows belong to.
func (c SaveTimeEntriesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Entries returns the rows to store, in ledger order.
func (c SaveTimeEntriesCommand) Entries() []ledger.TimeEntry {
	return c.entries
}

func (c *SaveTimeEntriesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
