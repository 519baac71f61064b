package entryrepo

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormEntryRepository implements EntryRepository using GORM. Saving is
// replace-all: the order's old rows are deleted and the given rows inserted
// with fresh identities, inside the caller's transaction.
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GORM entry repository.
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// ReplaceTimeEntries replaces a work order's stored time rows.
func (r *GormEntryRepository) ReplaceTimeEntries(
	ctx context.Context, orderID kernel.UUID, entries []ledger.TimeEntry,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("work_order_id = ?", orderID.Bytes()).Delete(&TimeEntryDTO{}).Error; err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	dtos := make([]TimeEntryDTO, 0, len(entries))
	for position, entry := range entries {
		dtos = append(dtos, timeEntryFromDomain(orderID.Bytes(), position, entry))
	}

	return db.Create(&dtos).Error
}

// ReplaceMaterialEntries replaces a work order's stored material rows.
func (r *GormEntryRepository) ReplaceMaterialEntries(
	ctx context.Context, orderID kernel.UUID, entries []ledger.MaterialEntry,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("work_order_id = ?", orderID.Bytes()).Delete(&MaterialEntryDTO{}).Error; err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	dtos := make([]MaterialEntryDTO, 0, len(entries))
	for position, entry := range entries {
		dtos = append(dtos, materialEntryFromDomain(orderID.Bytes(), position, entry))
	}

	return db.Create(&dtos).Error
}

// GetTimeEntries retrieves a work order's time rows in stored order.
func (r *GormEntryRepository) GetTimeEntries(
	ctx context.Context, orderID kernel.UUID,
) ([]ledger.TimeEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TimeEntryDTO
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", orderID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.TimeEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, timeEntryToDomain(dto))
	}

	return entries, nil
}

// GetMaterialEntries retrieves a work order's material rows in stored order.
func (r *GormEntryRepository) GetMaterialEntries(
	ctx context.Context, orderID kernel.UUID,
) ([]ledger.MaterialEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MaterialEntryDTO
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", orderID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.MaterialEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, materialEntryToDomain(dto))
	}

	return entries, nil
}
