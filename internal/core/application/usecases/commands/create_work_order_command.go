package commands

import (
	"errors"
	"strings"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"
	"workorder/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to register a new maintenance
// work order for a rail vehicle.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	title       string
	customer    string
	details     workorder.Details

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a new work order.
// The order number, title, and customer must be non-blank; details are
// optional.
func NewCreateWorkOrderCommand(
	orderID kernel.UUID,
	orderNumber, title, customer string,
	details workorder.Details,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setTitle(title),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}
	cmd.details = details

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new work order will be created under.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing order number.
func (c CreateWorkOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Title returns the short description of the job.
func (c CreateWorkOrderCommand) Title() string {
	return c.title
}

// Customer returns the customer the job is billed to.
func (c CreateWorkOrderCommand) Customer() string {
	return c.customer
}

// Details returns the optional descriptive fields.
func (c CreateWorkOrderCommand) Details() workorder.Details {
	return c.details
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWorkOrderCommand) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateWorkOrderCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateWorkOrderCommand) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}
