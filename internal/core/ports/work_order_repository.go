// Package ports defines the repository and gateway interfaces of the work
// order domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// The work order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
}
