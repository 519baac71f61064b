package commands

import (
	"errors"
	"strings"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderCommand represents a request to change a work order's
// editable fields. The lifecycle status is not among them; it changes only
// through ChangeWorkOrderStatusCommand.
type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	title       string
	customer    string
	details     workorder.Details

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderCommand creates a command to update an existing work
// order. The same field rules apply as on creation.
func NewUpdateWorkOrderCommand(
	orderID kernel.UUID,
	orderNumber, title, customer string,
	details workorder.Details,
) (UpdateWorkOrderCommand, error) {
	cmd := UpdateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequired("orderNumber", orderNumber, &cmd.orderNumber),
		cmd.setRequired("title", title, &cmd.title),
		cmd.setRequired("customer", customer, &cmd.customer),
	); err != nil {
		return UpdateWorkOrderCommand{}, err
	}
	cmd.details = details

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to update.
func (c UpdateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the new order number.
func (c UpdateWorkOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Title returns the new title.
func (c UpdateWorkOrderCommand) Title() string {
	return c.title
}

// Customer returns the new customer.
func (c UpdateWorkOrderCommand) Customer() string {
	return c.customer
}

// Details returns the new descriptive fields.
func (c UpdateWorkOrderCommand) Details() workorder.Details {
	return c.details
}

func (c *UpdateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateWorkOrderCommand) setRequired(name, value string, target *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*target = value
	return nil
}
