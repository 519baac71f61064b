package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTimeEntriesQueryHandler retrieves a work order's stored time rows.
type GetTimeEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetTimeEntriesQueryHandler creates a handler for reading time rows.
func NewGetTimeEntriesQueryHandler(db *gorm.DB) GetTimeEntriesQueryHandler {
	return GetTimeEntriesQueryHandler{db: db}
}

// Handle executes the query. Rows come back in the order they were saved.
func (h GetTimeEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetTimeEntriesQuery,
) ([]TimeEntryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]TimeEntryRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			work,
			hours,
			rate,
			total
		FROM time_entries
		WHERE work_order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TimeEntryRow

		err = rows.Scan(
			&entry.Action,
			&entry.Work,
			&entry.Hours,
			&entry.Rate,
			&entry.Total,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetMaterialEntriesQueryHandler retrieves a work order's stored material
// rows.
type GetMaterialEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMaterialEntriesQueryHandler creates a handler for reading material
// rows.
func NewGetMaterialEntriesQueryHandler(db *gorm.DB) GetMaterialEntriesQueryHandler {
	return GetMaterialEntriesQueryHandler{db: db}
}

// Handle executes the query. Rows come back in the order they were saved.
func (h GetMaterialEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetMaterialEntriesQuery,
) ([]MaterialEntryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]MaterialEntryRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			article_key,
			description,
			quantity,
			unit,
			price,
			total
		FROM material_entries
		WHERE work_order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry MaterialEntryRow

		err = rows.Scan(
			&entry.ArticleKey,
			&entry.Description,
			&entry.Quantity,
			&entry.Unit,
			&entry.Price,
			&entry.Total,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
