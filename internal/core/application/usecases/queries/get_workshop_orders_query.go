package queries

import (
	"errors"

	"workorder/internal/pkg/guard"
)

var ErrGetWorkshopOrdersQueryIsNotConstructed = errors.New(
	"GetWorkshopOrdersQuery must be created via NewGetWorkshopOrdersQuery constructor",
)

// GetWorkshopOrdersQuery retrieves the orders the workshop floor works
// from: open and in-progress orders, oldest first. Finished and billed
// orders stay out of the way.
type GetWorkshopOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkshopOrdersQuery creates a query for the workshop backlog.
func NewGetWorkshopOrdersQuery() GetWorkshopOrdersQuery {
	return GetWorkshopOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkshopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkshopOrdersQueryIsNotConstructed)
}
