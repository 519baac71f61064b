// Package workorderrepo provides data transfer objects and mapping functions
// for work order persistence. It implements the repository pattern for the
// work order aggregate, handling the conversion between domain entities and
// database representations.
package workorderrepo

import (
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates. The status is stored by its wire name so the table reads the
// same as the API.
type WorkOrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"uniqueIndex"`
	Title       string
	Customer    string
	Details     DetailsDTO `gorm:"embedded"`
	Status      string     `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ArchivedAt  *time.Time `gorm:"index"`
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// DetailsDTO represents the embedded descriptive fields within the work
// order table.
type DetailsDTO struct {
	Description string
	Category    string
	TrainNumber string
	Vehicle     string
	Location    string
	Track       string
}

// fromDomain converts a work order aggregate to its database representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	details := aggregate.Details()

	return WorkOrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Title:       aggregate.Title(),
		Customer:    aggregate.Customer(),
		Details: DetailsDTO{
			Description: details.Description,
			Category:    details.Category,
			TrainNumber: details.TrainNumber,
			Vehicle:     details.Vehicle,
			Location:    details.Location,
			Track:       details.Track,
		},
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		ArchivedAt: aggregate.ArchivedAt(),
	}
}

// toDomain converts a database DTO to a work order aggregate using
// RestoreWorkOrder, applying the same validation as on creation.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := workorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id,
		dto.OrderNumber,
		dto.Title,
		dto.Customer,
		workorder.Details{
			Description: dto.Details.Description,
			Category:    dto.Details.Category,
			TrainNumber: dto.Details.TrainNumber,
			Vehicle:     dto.Details.Vehicle,
			Location:    dto.Details.Location,
			Track:       dto.Details.Track,
		},
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ArchivedAt,
	)
}
