package commands

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/guard"
)

var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand represents a request to move a work order to
// another lifecycle status. Whether the move is allowed is decided by the
// aggregate, not the command.
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a command to change a work
// order's status. The target status must be a valid lifecycle state.
func NewChangeWorkOrderStatusCommand(
	orderID kernel.UUID,
	next workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	cmd := ChangeWorkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to move.
func (c ChangeWorkOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the target status.
func (c ChangeWorkOrderStatusCommand) Next() workorder.Status {
	return c.next
}

func (c *ChangeWorkOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeWorkOrderStatusCommand) setNext(next workorder.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
