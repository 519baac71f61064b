package queries

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkshopOrdersQueryHandler retrieves the workshop backlog.
type GetWorkshopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkshopOrdersQueryHandler creates a handler for the workshop
// backlog. Requires a GORM database connection for query execution.
func NewGetWorkshopOrdersQueryHandler(db *gorm.DB) GetWorkshopOrdersQueryHandler {
	return GetWorkshopOrdersQueryHandler{db: db}
}

// Handle executes the query. Only open and in-progress orders are
// returned, oldest first, so the longest-waiting jobs surface on top.
func (h GetWorkshopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkshopOrdersQuery,
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
		WHERE status IN (?, ?) AND archived_at IS NULL
		ORDER BY created_at
	`, workorder.Open.String(), workorder.InProgress.String()).Rows()
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
