package commands

import (
	"context"
	"time"
)

// ArchiveWorkOrderCommandHandler handles archiving of work orders. Archived
// orders keep their data but disappear from the list and workshop views.
type ArchiveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewArchiveWorkOrderCommandHandler creates a handler for archive requests.
func NewArchiveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) ArchiveWorkOrderCommandHandler {
	return ArchiveWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the work order, marks it archived, and persists the result
// inside a transaction. Archiving an already archived order is a no-op.
func (h *ArchiveWorkOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveWorkOrderCommand) error {
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

	order.Archive(time.Now().UTC())

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
