package queries

import (
	"errors"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/guard"
)

var (
	ErrGetTimeEntriesQueryIsNotConstructed = errors.New(
		"GetTimeEntriesQuery must be created via NewGetTimeEntriesQuery constructor",
	)
	ErrGetMaterialEntriesQueryIsNotConstructed = errors.New(
		"GetMaterialEntriesQuery must be created via NewGetMaterialEntriesQuery constructor",
	)
)

// GetTimeEntriesQuery retrieves a work order's time rows in stored order.
type GetTimeEntriesQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTimeEntriesQuery creates a query for a work order's time rows.
func NewGetTimeEntriesQuery(orderID kernel.UUID) (GetTimeEntriesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTimeEntriesQuery{}, err
	}

	return GetTimeEntriesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimeEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetTimeEntriesQueryIsNotConstructed)
}

// OrderID returns the identifier of the work order whose rows to read.
func (q GetTimeEntriesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TimeEntryRow is the read model of one stored time row.
type TimeEntryRow struct {
	Action string
	Work   string
	Hours  float64
	Rate   float64
	Total  float64
}

// GetMaterialEntriesQuery retrieves a work order's material rows in stored
// order.
type GetMaterialEntriesQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMaterialEntriesQuery creates a query for a work order's material
// rows.
func NewGetMaterialEntriesQuery(orderID kernel.UUID) (GetMaterialEntriesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetMaterialEntriesQuery{}, err
	}

	return GetMaterialEntriesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMaterialEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialEntriesQueryIsNotConstructed)
}

// OrderID returns the identifier of the work order whose rows to read.
func (q GetMaterialEntriesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// MaterialEntryRow is the read model of one stored material row.
type MaterialEntryRow struct {
	ArticleKey  string
	Description string
	Quantity    float64
	Unit        string
	Price       float64
	Total       float64
}
