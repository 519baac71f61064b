package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler retrieves one work order with its ledger totals.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for the order detail view.
// Requires a GORM database connection for query execution.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// order does not exist.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (WorkOrderDetail, error) {
	if err := query.Validate(); err != nil {
		return WorkOrderDetail{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			wo.id,
			wo.order_number,
			wo.title,
			wo.customer,
			wo.description,
			wo.category,
			wo.train_number,
			wo.vehicle,
			wo.location,
			wo.track,
			wo.status,
			COALESCE((SELECT SUM(total) FROM time_entries WHERE work_order_id = wo.id), 0),
			COALESCE((SELECT SUM(total) FROM material_entries WHERE work_order_id = wo.id), 0),
			wo.created_at,
			wo.updated_at,
			wo.archived_at
		FROM work_orders wo
		WHERE wo.id = ?
	`, query.OrderID().Bytes()).Row()

	var detail WorkOrderDetail
	var id uuid.UUID
	var status string

	err := row.Scan(
		&id,
		&detail.OrderNumber,
		&detail.Title,
		&detail.Customer,
		&detail.Details.Description,
		&detail.Details.Category,
		&detail.Details.TrainNumber,
		&detail.Details.Vehicle,
		&detail.Details.Location,
		&detail.Details.Track,
		&status,
		&detail.TimeTotal,
		&detail.MaterialTotal,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.ArchivedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return WorkOrderDetail{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return WorkOrderDetail{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return WorkOrderDetail{}, err
	}
	detail.ID = orderID

	detail.Status, err = workorder.StatusFromString(status)
	if err != nil {
		return WorkOrderDetail{}, err
	}

	return detail, nil
}
