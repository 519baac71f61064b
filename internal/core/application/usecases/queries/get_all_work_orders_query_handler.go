package queries

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllWorkOrdersQueryHandler retrieves work order summaries from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAllWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkOrdersQueryHandler creates a handler for the order list.
// Requires a GORM database connection for query execution.
func NewGetAllWorkOrdersQueryHandler(db *gorm.DB) GetAllWorkOrdersQueryHandler {
	return GetAllWorkOrdersQueryHandler{db: db}
}

// Handle executes the query. Archived orders are excluded; results come
// newest first.
func (h GetAllWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkOrdersQuery,
) ([]WorkOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]WorkOrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			title,
			customer,
			status,
			created_at,
			updated_at
		FROM work_orders
		WHERE archived_at IS NULL
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary WorkOrderSummary
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.Title,
			&summary.Customer,
			&status,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		summary.Status, err = workorder.StatusFromString(status)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
