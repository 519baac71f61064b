// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/guard"
)

var ErrGetAllWorkOrdersQueryIsNotConstructed = errors.New(
	"GetAllWorkOrdersQuery must be created via NewGetAllWorkOrdersQuery constructor",
)

// GetAllWorkOrdersQuery retrieves every non-archived work order, newest
// first. Used by the order list view.
type GetAllWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkOrdersQuery creates a query to retrieve all work orders.
func NewGetAllWorkOrdersQuery() GetAllWorkOrdersQuery {
	return GetAllWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkOrdersQueryIsNotConstructed)
}

// WorkOrderSummary is the list read model: identity and headline fields
// only, no line items.
type WorkOrderSummary struct {
	ID          kernel.UUID
	OrderNumber string
	Title       string
	Customer    string
	Status      workorder.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
