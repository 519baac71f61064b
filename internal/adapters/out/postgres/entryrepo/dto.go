// Package entryrepo provides data transfer objects and mapping functions for
// a work order's line items. Rows are stored per order with an explicit
// position, so the ledger comes back in the order it was saved.
package entryrepo

import (
	"workorder/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// TimeEntryDTO represents the database structure for one stored time row.
// Row identity is technical; rows are replaced wholesale on save.
type TimeEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Action      string
	Work        string
	Hours       float64
	Rate        float64
	Total       float64
}

// TableName specifies the database table name for time rows.
func (TimeEntryDTO) TableName() string {
	return "time_entries"
}

// MaterialEntryDTO represents the database structure for one stored
// material row.
type MaterialEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	ArticleKey  string
	Description string
	Quantity    float64
	Unit        string
	Price       float64
	Total       float64
}

// TableName specifies the database table name for material rows.
func (MaterialEntryDTO) TableName() string {
	return "material_entries"
}

func timeEntryFromDomain(orderID uuid.UUID, position int, entry ledger.TimeEntry) TimeEntryDTO {
	return TimeEntryDTO{
		ID:          uuid.New(),
		WorkOrderID: orderID,
		Position:    position,
		Action:      entry.Action(),
		Work:        entry.Work(),
		Hours:       entry.Hours(),
		Rate:        entry.Rate(),
		Total:       entry.Total(),
	}
}

func timeEntryToDomain(dto TimeEntryDTO) ledger.TimeEntry {
	return ledger.RestoreTimeEntry(dto.Action, dto.Work, dto.Hours, dto.Rate)
}

func materialEntryFromDomain(orderID uuid.UUID, position int, entry ledger.MaterialEntry) MaterialEntryDTO {
	return MaterialEntryDTO{
		ID:          uuid.New(),
		WorkOrderID: orderID,
		Position:    position,
		ArticleKey:  entry.ArticleKey(),
		Description: entry.Description(),
		Quantity:    entry.Quantity(),
		Unit:        entry.Unit(),
		Price:       entry.Price(),
		Total:       entry.Total(),
	}
}

func materialEntryToDomain(dto MaterialEntryDTO) ledger.MaterialEntry {
	return ledger.RestoreMaterialEntry(dto.ArticleKey, dto.Description, dto.Quantity, dto.Unit, dto.Price)
}
