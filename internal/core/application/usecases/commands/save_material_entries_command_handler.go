package commands

import (
	"context"
)

// SaveMaterialEntriesCommandHandler persists a work order's material rows.
// The whole stored list is replaced in one transaction.
type SaveMaterialEntriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewSaveMaterialEntriesCommandHandler creates a handler for saving
// material rows.
func NewSaveMaterialEntriesCommandHandler(uowFactory UoWFactory) SaveMaterialEntriesCommandHandler {
	return SaveMaterialEntriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the work order exists and replaces its stored material
// rows.
func (h *SaveMaterialEntriesCommandHandler) Handle(ctx context.Context, cmd SaveMaterialEntriesCommand) error {
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

	if err := uow.EntryRepository().ReplaceMaterialEntries(ctx, cmd.OrderID(), cmd.Entries()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
