package http

import (
	"time"

	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/core/domain/model/workorder"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WorkOrderRequest is the body of create and update work order requests.
type WorkOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
	Title       string `json:"title"`
	Customer    string `json:"customer"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TrainNumber string `json:"trainNumber"`
	Vehicle     string `json:"vehicle"`
	Location    string `json:"location"`
	Track       string `json:"track"`
}

func (r WorkOrderRequest) details() workorder.Details {
	return workorder.Details{
		Description: r.Description,
		Category:    r.Category,
		TrainNumber: r.TrainNumber,
		Vehicle:     r.Vehicle,
		Location:    r.Location,
		Track:       r.Track,
	}
}

// ChangeStatusRequest is the body of status transition requests.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// WorkOrderSummaryResponse is one row of the work order list.
type WorkOrderSummaryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Title       string    `json:"title"`
	Customer    string    `json:"customer"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func summaryFromReadModel(s queries.WorkOrderSummary) WorkOrderSummaryResponse {
	return WorkOrderSummaryResponse{
		ID:          s.ID.String(),
		OrderNumber: s.OrderNumber,
		Title:       s.Title,
		Customer:    s.Customer,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// WorkOrderDetailResponse is the full work order view including the summed
// ledger totals.
type WorkOrderDetailResponse struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	Title         string     `json:"title"`
	Customer      string     `json:"customer"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	TrainNumber   string     `json:"trainNumber"`
	Vehicle       string     `json:"vehicle"`
	Location      string     `json:"location"`
	Track         string     `json:"track"`
	Status        string     `json:"status"`
	TimeTotal     float64    `json:"timeTotal"`
	MaterialTotal float64    `json:"materialTotal"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ArchivedAt    *time.Time `json:"archivedAt,omitempty"`
}

func detailFromReadModel(d queries.WorkOrderDetail) WorkOrderDetailResponse {
	return WorkOrderDetailResponse{
		ID:            d.ID.String(),
		OrderNumber:   d.OrderNumber,
		Title:         d.Title,
		Customer:      d.Customer,
		Description:   d.Details.Description,
		Category:      d.Details.Category,
		TrainNumber:   d.Details.TrainNumber,
		Vehicle:       d.Details.Vehicle,
		Location:      d.Details.Location,
		Track:         d.Details.Track,
		Status:        d.Status.String(),
		TimeTotal:     d.TimeTotal,
		MaterialTotal: d.MaterialTotal,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		ArchivedAt:    d.ArchivedAt,
	}
}

// TimeEntryRequest is one time row as submitted by the client. Hours and
// rate come as raw text; unparseable values are stored as zero, matching
// the editor's behavior.
type TimeEntryRequest struct {
	Action string `json:"action"`
	Work   string `json:"work"`
	Hours  string `json:"hours"`
	Rate   string `json:"rate"`
}

func timeEntriesFromRequest(rows []TimeEntryRequest) []ledger.TimeEntry {
	entries := make([]ledger.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ledger.NewTimeEntry(row.Action, row.Work, row.Hours, row.Rate))
	}
	return entries
}

// TimeEntryResponse is one stored time row with its computed total.
type TimeEntryResponse struct {
	Action string  `json:"action"`
	Work   string  `json:"work"`
	Hours  float64 `json:"hours"`
	Rate   float64 `json:"rate"`
	Total  float64 `json:"total"`
}

func timeEntriesFromReadModel(rows []queries.TimeEntryRow) []TimeEntryResponse {
	response := make([]TimeEntryResponse, len(rows))
	for i, row := range rows {
		response[i] = TimeEntryResponse{
			Action: row.Action,
			Work:   row.Work,
			Hours:  row.Hours,
			Rate:   row.Rate,
			Total:  row.Total,
		}
	}
	return response
}

// MaterialEntryRequest is one material row as submitted by the client.
// Quantity and price come as raw text, same parsing rules as time rows.
type MaterialEntryRequest struct {
	ArticleKey  string `json:"articleKey"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Price       string `json:"price"`
}

func materialEntriesFromRequest(rows []MaterialEntryRequest) []ledger.MaterialEntry {
	entries := make([]ledger.MaterialEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ledger.NewMaterialEntry(
			row.ArticleKey, row.Description, row.Quantity, row.Unit, row.Price,
		))
	}
	return entries
}

// MaterialEntryResponse is one stored material row with its computed total.
type MaterialEntryResponse struct {
	ArticleKey  string  `json:"articleKey"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

func materialEntriesFromReadModel(rows []queries.MaterialEntryRow) []MaterialEntryResponse {
	response := make([]MaterialEntryResponse, len(rows))
	for i, row := range rows {
		response[i] = MaterialEntryResponse{
			ArticleKey:  row.ArticleKey,
			Description: row.Description,
			Quantity:    row.Quantity,
			Unit:        row.Unit,
			Price:       row.Price,
			Total:       row.Total,
		}
	}
	return response
}

// PriceItemResponse is one price list article.
type PriceItemResponse struct {
	EmNr  string  `json:"emNr"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

func priceItemFromEntry(entry pricelist.Entry) PriceItemResponse {
	return PriceItemResponse{
		EmNr:  entry.Key(),
		Name:  entry.Name(),
		Price: entry.Price(),
		Unit:  entry.Unit(),
	}
}

func priceItemsFromEntries(entries []pricelist.Entry) []PriceItemResponse {
	response := make([]PriceItemResponse, len(entries))
	for i, entry := range entries {
		response[i] = priceItemFromEntry(entry)
	}
	return response
}
