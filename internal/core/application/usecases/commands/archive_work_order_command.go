package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/guard"
)

var ErrArchiveWorkOrderCommandIsNotConstructed = errors.New(
	"ArchiveWorkOrderCommand must be created via NewArchiveWorkOrderCommand constructor",
)

// ArchiveWorkOrderCommand represents a request to archive a work order,
// removing it from the active views without deleting its data.
type ArchiveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveWorkOrderCommand creates a command to archive a work order.
func NewArchiveWorkOrderCommand(orderID kernel.UUID) (ArchiveWorkOrderCommand, error) {
	cmd := ArchiveWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ArchiveWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to archive.
func (c ArchiveWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ArchiveWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
