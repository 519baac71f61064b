package commands

import (
	"context"
)

// SaveTimeEntriesCommandHandler persists a work order's time rows. The
// whole stored list is replaced in one transaction, so a failed save leaves
// the previous rows intact.
type SaveTimeEntriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewSaveTimeEntriesCommandHandler creates a handler for saving time rows.
func NewSaveTimeEntriesCommandHandler(uowFactory UoWFactory) SaveTimeEntriesCommandHandler {
	return SaveTimeEntriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the work order exists and replaces its stored time rows.
func (h *SaveTimeEntriesCommandHandler) Handle(ctx context.Context, cmd SaveTimeEntriesCommand) error {
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

	if _, err := uow.WorkOrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.EntryRepository().ReplaceTimeEntries(ctx, cmd.OrderID(), cmd.Entries()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
