package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CatalogReloader refreshes the price catalog cache from its source.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// Server exposes the work order API over HTTP.
// It coordinates between echo handlers and application use cases.
type Server struct {
	// Command handlers
	createWorkOrderHandler     commands.CreateWorkOrderCommandHandler
	updateWorkOrderHandler     commands.UpdateWorkOrderCommandHandler
	changeStatusHandler        commands.ChangeWorkOrderStatusCommandHandler
	archiveWorkOrderHandler    commands.ArchiveWorkOrderCommandHandler
	saveTimeEntriesHandler     commands.SaveTimeEntriesCommandHandler
	saveMaterialEntriesHandler commands.SaveMaterialEntriesCommandHandler

	// Query handlers
	getAllWorkOrdersHandler   queries.GetAllWorkOrdersQueryHandler
	getWorkOrderHandler       queries.GetWorkOrderQueryHandler
	getWorkshopOrdersHandler  queries.GetWorkshopOrdersQueryHandler
	getTimeEntriesHandler     queries.GetTimeEntriesQueryHandler
	getMaterialEntriesHandler queries.GetMaterialEntriesQueryHandler

	// Price catalog
	catalog  ports.PriceCatalog
	reloader CatalogReloader
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the price catalog.
func NewServer(
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	updateWorkOrderHandler commands.UpdateWorkOrderCommandHandler,
	changeStatusHandler commands.ChangeWorkOrderStatusCommandHandler,
	archiveWorkOrderHandler commands.ArchiveWorkOrderCommandHandler,
	saveTimeEntriesHandler commands.SaveTimeEntriesCommandHandler,
	saveMaterialEntriesHandler commands.SaveMaterialEntriesCommandHandler,
	getAllWorkOrdersHandler queries.GetAllWorkOrdersQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
	getWorkshopOrdersHandler queries.GetWorkshopOrdersQueryHandler,
	getTimeEntriesHandler queries.GetTimeEntriesQueryHandler,
	getMaterialEntriesHandler queries.GetMaterialEntriesQueryHandler,
	catalog ports.PriceCatalog,
	reloader CatalogReloader,
) *Server {
	return &Server{
		createWorkOrderHandler:     createWorkOrderHandler,
		updateWorkOrderHandler:     updateWorkOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		archiveWorkOrderHandler:    archiveWorkOrderHandler,
		saveTimeEntriesHandler:     saveTimeEntriesHandler,
		saveMaterialEntriesHandler: saveMaterialEntriesHandler,
		getAllWorkOrdersHandler:    getAllWorkOrdersHandler,
		getWorkOrderHandler:        getWorkOrderHandler,
		getWorkshopOrdersHandler:   getWorkshopOrdersHandler,
		getTimeEntriesHandler:      getTimeEntriesHandler,
		getMaterialEntriesHandler:  getMaterialEntriesHandler,
		catalog:                    catalog,
		reloader:                   reloader,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/workorders", s.GetWorkOrders)
	api.POST("/workorders", s.CreateWorkOrder)
	api.GET("/workorders/workshop", s.GetWorkshopOrders)
	api.GET("/workorders/:id", s.GetWorkOrder)
	api.PUT("/workorders/:id", s.UpdateWorkOrder)
	api.DELETE("/workorders/:id", s.ArchiveWorkOrder)
	api.PATCH("/workorders/:id/status", s.ChangeWorkOrderStatus)
	api.GET("/workorders/:id/time-entries", s.GetTimeEntries)
	api.POST("/workorders/:id/time-entries", s.SaveTimeEntries)
	api.GET("/workorders/:id/material-entries", s.GetMaterialEntries)
	api.POST("/workorders/:id/material-entries", s.SaveMaterialEntries)

	api.GET("/pricelist/search", s.SearchPriceList)
	api.GET("/pricelist/:key", s.GetPriceItem)
	api.POST("/pricelist/reload", s.ReloadPriceList)

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// GetWorkOrders handles GET /api/workorders - lists all active work orders.
//
//	@Summary	List work orders
//	@Tags		workorders
//	@Produce	json
//	@Success	200	{array}	WorkOrderSummaryResponse
//	@Router		/api/workorders [get]
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	query := queries.NewGetAllWorkOrdersQuery()

	orders, err := s.getAllWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve work orders")
	}

	response := make([]WorkOrderSummaryResponse, len(orders))
	for i, order := range orders {
		response[i] = summaryFromReadModel(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkshopOrders handles GET /api/workorders/workshop - lists orders
// whose vehicles are currently in the workshop.
//
//	@Summary	List orders in the workshop
//	@Tags		workorders
//	@Produce	json
//	@Success	200	{array}	WorkOrderSummaryResponse
//	@Router		/api/workorders/workshop [get]
func (s *Server) GetWorkshopOrders(ctx echo.Context) error {
	query := queries.NewGetWorkshopOrdersQuery()

	orders, err := s.getWorkshopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve workshop orders")
	}

	response := make([]WorkOrderSummaryResponse, len(orders))
	for i, order := range orders {
		response[i] = summaryFromReadModel(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrder handles GET /api/workorders/:id - retrieves one work order
// with its cost totals.
//
//	@Summary	Get a work order
//	@Tags		workorders
//	@Produce	json
//	@Param		id	path		string	true	"Work order ID"
//	@Success	200	{object}	WorkOrderDetailResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/workorders/{id} [get]
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	query, err := queries.NewGetWorkOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	order, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to retrieve work order")
	}

	return ctx.JSON(http.StatusOK, detailFromReadModel(order))
}

// CreateWorkOrder handles POST /api/workorders - registers a new work order.
//
//	@Summary	Create a work order
//	@Tags		workorders
//	@Accept		json
//	@Produce	json
//	@Param		request	body	WorkOrderRequest	true	"Work order fields"
//	@Success	201		{object}	map[string]string
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/workorders [post]
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var request WorkOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		orderID,
		request.OrderNumber,
		request.Title,
		request.Customer,
		request.details(),
	)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order data: "+err.Error())
	}

	if err := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to create work order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// UpdateWorkOrder handles PUT /api/workorders/:id - updates the descriptive
// fields of an existing work order.
//
//	@Summary	Update a work order
//	@Tags		workorders
//	@Accept		json
//	@Param		id		path	string				true	"Work order ID"
//	@Param		request	body	WorkOrderRequest	true	"Work order fields"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/workorders/{id} [put]
func (s *Server) UpdateWorkOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	var request WorkOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateWorkOrderCommand(
		orderID,
		request.OrderNumber,
		request.Title,
		request.Customer,
		request.details(),
	)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order data: "+err.Error())
	}

	if err := s.updateWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to update work order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveWorkOrder handles DELETE /api/workorders/:id - archives a work
// order. The order keeps its data but disappears from the list views.
//
//	@Summary	Archive a work order
//	@Tags		workorders
//	@Param		id	path	string	true	"Work order ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/workorders/{id} [delete]
func (s *Server) ArchiveWorkOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	cmd, err := commands.NewArchiveWorkOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.archiveWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to archive work order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeWorkOrderStatus handles PATCH /api/workorders/:id/status - moves a
// work order to another lifecycle state. Transitions out of a terminal
// state are rejected with 409.
//
//	@Summary	Change work order status
//	@Tags		workorders
//	@Accept		json
//	@Param		id		path	string				true	"Work order ID"
//	@Param		request	body	ChangeStatusRequest	true	"Target status"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/workorders/{id}/status [patch]
func (s *Server) ChangeWorkOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	next, err := workorder.StatusFromString(request.Status)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(orderID, next)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isTerminalTransition(err) {
			return s.errorResponse(ctx, http.StatusConflict, err.Error())
		}
		return s.domainErrorResponse(ctx, err, "Failed to change work order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTimeEntries handles GET /api/workorders/:id/time-entries - retrieves a
// work order's time rows in stored order.
//
//	@Summary	Get time entries
//	@Tags		entries
//	@Produce	json
//	@Param		id	path	string	true	"Work order ID"
//	@Success	200	{array}	TimeEntryResponse
//	@Router		/api/workorders/{id}/time-entries [get]
func (s *Server) GetTimeEntries(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	query, err := queries.NewGetTimeEntriesQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	rows, err := s.getTimeEntriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to retrieve time entries")
	}

	return ctx.JSON(http.StatusOK, timeEntriesFromReadModel(rows))
}

// SaveTimeEntries handles POST /api/workorders/:id/time-entries - replaces
// a work order's time rows with the submitted ones.
//
//	@Summary	Replace time entries
//	@Tags		entries
//	@Accept		json
//	@Param		id		path	string				true	"Work order ID"
//	@Param		request	body	[]TimeEntryRequest	true	"Time rows"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/workorders/{id}/time-entries [post]
func (s *Server) SaveTimeEntries(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	var request []TimeEntryRequest
	if err := ctx.Bind(&request); err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSaveTimeEntriesCommand(orderID, timeEntriesFromRequest(request))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.saveTimeEntriesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to save time entries")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMaterialEntries handles GET /api/workorders/:id/material-entries -
// retrieves a work order's material rows in stored order.
//
//	@Summary	Get material entries
//	@Tags		entries
//	@Produce	json
//	@Param		id	path	string	true	"Work order ID"
//	@Success	200	{array}	MaterialEntryResponse
//	@Router		/api/workorders/{id}/material-entries [get]
func (s *Server) GetMaterialEntries(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	query, err := queries.NewGetMaterialEntriesQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	rows, err := s.getMaterialEntriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to retrieve material entries")
	}

	return ctx.JSON(http.StatusOK, materialEntriesFromReadModel(rows))
}

// SaveMaterialEntries handles POST /api/workorders/:id/material-entries -
// replaces a work order's material rows with the submitted ones.
//
//	@Summary	Replace material entries
//	@Tags		entries
//	@Accept		json
//	@Param		id		path	string					true	"Work order ID"
//	@Param		request	body	[]MaterialEntryRequest	true	"Material rows"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/workorders/{id}/material-entries [post]
func (s *Server) SaveMaterialEntries(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid work order ID")
	}

	var request []MaterialEntryRequest
	if err := ctx.Bind(&request); err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSaveMaterialEntriesCommand(orderID, materialEntriesFromRequest(request))
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.saveMaterialEntriesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainErrorResponse(ctx, err, "Failed to save material entries")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchPriceList handles GET /api/pricelist/search - finds articles whose
// key starts with the given prefix.
//
//	@Summary	Search the price list
//	@Tags		pricelist
//	@Produce	json
//	@Param		prefix	query	string	false	"Article key prefix"
//	@Success	200	{array}	PriceItemResponse
//	@Router		/api/pricelist/search [get]
func (s *Server) SearchPriceList(ctx echo.Context) error {
	prefix := ctx.QueryParam("prefix")

	entries, err := s.catalog.Search(ctx.Request().Context(), prefix)
	if err != nil {
		return s.errorResponse(ctx, http.StatusBadGateway, "Price list search failed")
	}

	return ctx.JSON(http.StatusOK, priceItemsFromEntries(entries))
}

// GetPriceItem handles GET /api/pricelist/:key - retrieves one article by
// its key.
//
//	@Summary	Get a price list article
//	@Tags		pricelist
//	@Produce	json
//	@Param		key	path		string	true	"Article key"
//	@Success	200	{object}	PriceItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/pricelist/{key} [get]
func (s *Server) GetPriceItem(ctx echo.Context) error {
	key := ctx.Param("key")

	entry, err := s.catalog.Lookup(ctx.Request().Context(), key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.errorResponse(ctx, http.StatusNotFound, "Unknown article: "+key)
		}
		if errors.Is(err, errs.ErrValueIsRequired) {
			return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return s.errorResponse(ctx, http.StatusBadGateway, "Price list lookup failed")
	}

	return ctx.JSON(http.StatusOK, priceItemFromEntry(entry))
}

// ReloadPriceList handles POST /api/pricelist/reload - refreshes the
// catalog cache from its source.
//
//	@Summary	Reload the price list cache
//	@Tags		pricelist
//	@Success	204
//	@Failure	502	{object}	ErrorResponse
//	@Router		/api/pricelist/reload [post]
func (s *Server) ReloadPriceList(ctx echo.Context) error {
	if err := s.reloader.Reload(ctx.Request().Context()); err != nil {
		return s.errorResponse(ctx, http.StatusBadGateway, "Price list reload failed")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// domainErrorResponse maps application errors onto HTTP status codes:
// missing objects to 404, rejected values to 400, anything else to 500
// with the given fallback message.
func (s *Server) domainErrorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return s.errorResponse(ctx, http.StatusInternalServerError, fallback)
	}
}

func isTerminalTransition(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) &&
		strings.Contains(err.Error(), "terminal state")
}
