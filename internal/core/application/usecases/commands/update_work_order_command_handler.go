package commands

import (
	"context"
	"time"
)

// UpdateWorkOrderCommandHandler handles edits to a work order's fields.
type UpdateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewUpdateWorkOrderCommandHandler creates a handler for work order updates.
func NewUpdateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the work order, applies the new field values, and persists
// the result inside a transaction.
func (h *UpdateWorkOrderCommandHandler) Handle(ctx context.Context, cmd UpdateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Update(
		cmd.OrderNumber(), cmd.Title(), cmd.Customer(), cmd.Details(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
