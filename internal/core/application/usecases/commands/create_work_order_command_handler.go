package commands

import (
	"context"
	"time"

	"workorder/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler handles the business logic for work order
// creation. New orders start in Open status with no line items.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work order
// creation. Requires a WorkOrderUoWFactory for transactional persistence.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work order creation command inside a transaction.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
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

	order, err := workorder.NewWorkOrder(
		cmd.OrderID(), cmd.OrderNumber(), cmd.Title(), cmd.Customer(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
