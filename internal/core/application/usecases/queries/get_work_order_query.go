package queries

import (
	"errors"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves one work order with its cost totals. The
// totals are summed in the database from the stored rows, so the detail
// view never shows figures the store does not back.
type GetWorkOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for one work order.
func NewGetWorkOrderQuery(orderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}

	return GetWorkOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the work order to read.
func (q GetWorkOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// WorkOrderDetail is the detail read model: the full order plus the summed
// ledger totals.
type WorkOrderDetail struct {
	ID            kernel.UUID
	OrderNumber   string
	Title         string
	Customer      string
	Details       workorder.Details
	Status        workorder.Status
	TimeTotal     float64
	MaterialTotal float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ArchivedAt    *time.Time
}
