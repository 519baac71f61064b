package commands

import (
	"context"
	"time"
)

// ChangeWorkOrderStatusCommandHandler handles lifecycle moves of a work
// order. The new status becomes visible only after the store confirms the
// update; a failed commit leaves the stored order untouched.
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for status
// changes.
func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the work order, asks the aggregate to move, and persists the
// result inside a transaction.
func (h *ChangeWorkOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkOrderStatusCommand) error {
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

	if err = order.ChangeStatus(cmd.Next(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
