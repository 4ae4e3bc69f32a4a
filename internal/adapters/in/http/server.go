// Package http exposes the fulfillment engine over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the command and query handlers.
type Server struct {
	// Command handlers
	optimizeFulfillmentHandler  commands.OptimizeFulfillmentCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	getPlanHandler                 queries.GetPlanQueryHandler
	getShipmentHandler             queries.GetShipmentQueryHandler
	getUndeliveredShipmentsHandler queries.GetUndeliveredShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	optimizeFulfillmentHandler commands.OptimizeFulfillmentCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	getPlanHandler queries.GetPlanQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getUndeliveredShipmentsHandler queries.GetUndeliveredShipmentsQueryHandler,
) *Server {
	return &Server{
		optimizeFulfillmentHandler:     optimizeFulfillmentHandler,
		createShipmentHandler:          createShipmentHandler,
		updateShipmentStatusHandler:    updateShipmentStatusHandler,
		getPlanHandler:                 getPlanHandler,
		getShipmentHandler:             getShipmentHandler,
		getUndeliveredShipmentsHandler: getUndeliveredShipmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/fulfillment/plans", s.OptimizeFulfillment)
	api.GET("/fulfillment/plans/:planID", s.GetPlan)
	api.POST("/shipments", s.CreateShipment)
	api.PATCH("/shipments/:shipmentID/status", s.UpdateShipmentStatus)
	api.GET("/shipments", s.GetUndeliveredShipments)
	api.GET("/shipments/:shipmentID", s.GetShipment)
}

// OptimizeFulfillment handles POST /api/v1/fulfillment/plans.
// Runs the optimization pipeline and returns the recommended plan.
func (s *Server) OptimizeFulfillment(ctx echo.Context) error {
	var body OptimizeFulfillmentRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	request, err := toDomainRequest(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid fulfillment request: " + err.Error(),
		})
	}

	cmd, err := commands.NewOptimizeFulfillmentCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid fulfillment request: " + err.Error(),
		})
	}

	started := time.Now()
	plan, err := s.optimizeFulfillmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		metrics.OptimizationFailuresTotal.Inc()
		return errorJSON(ctx, err, "Failed to optimize fulfillment")
	}

	metrics.PlansOptimizedTotal.Inc()
	metrics.OptimizationDuration.Observe(time.Since(started).Seconds())

	return ctx.JSON(http.StatusCreated, planToResponse(plan))
}

// GetPlan handles GET /api/v1/fulfillment/plans/:planID.
func (s *Server) GetPlan(ctx echo.Context) error {
	planID, err := kernel.UUIDFromString(ctx.Param("planID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan id",
		})
	}

	query, err := queries.NewGetPlanQuery(planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan id",
		})
	}

	plan, err := s.getPlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err, "Failed to retrieve plan")
	}

	return ctx.JSON(http.StatusOK, planQueryResponseToResponse(plan))
}

// CreateShipment handles POST /api/v1/shipments.
// Creates a shipment from a previously optimized plan.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body CreateShipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	planID, err := kernel.UUIDFromString(body.PlanID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan id",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment request: " + err.Error(),
		})
	}

	shp, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err, "Failed to create shipment")
	}

	metrics.ShipmentsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, shipmentToResponse(shp))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:shipmentID/status.
// Applies one carrier status update to the shipment's state machine.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	var body UpdateShipmentStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := shipment.StatusFromString(body.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + body.Status,
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(
		shipmentID, status, body.Location, body.Description, body.FailedAttempt)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	shp, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err, "Failed to update shipment status")
	}

	metrics.ShipmentStatusUpdatesTotal.WithLabelValues(status.String()).Inc()
	return ctx.JSON(http.StatusOK, shipmentToResponse(shp))
}

// GetShipment handles GET /api/v1/shipments/:shipmentID.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	shp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err, "Failed to retrieve shipment")
	}

	return ctx.JSON(http.StatusOK, shipmentQueryResponseToResponse(shp))
}

// GetUndeliveredShipments handles GET /api/v1/shipments.
// Lists every shipment still in flight, most urgent first.
func (s *Server) GetUndeliveredShipments(ctx echo.Context) error {
	query := queries.NewGetUndeliveredShipmentsQuery()

	shipments, err := s.getUndeliveredShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err, "Failed to retrieve shipments")
	}

	responses := make([]ShipmentSummaryResponse, 0, len(shipments))
	for _, shp := range shipments {
		responses = append(responses, shipmentSummaryToResponse(shp))
	}

	return ctx.JSON(http.StatusOK, responses)
}

// toDomainRequest maps the request body onto the validated domain aggregate.
func toDomainRequest(body OptimizeFulfillmentRequest) (*fulfillment.Request, error) {
	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return nil, err
	}

	items := make([]fulfillment.Item, 0, len(body.Items))
	for _, itemBody := range body.Items {
		item, itemErr := fulfillment.NewItem(
			itemBody.ProductID,
			itemBody.Quantity,
			fulfillment.Dimensions(itemBody.Dimensions),
			itemBody.Weight,
			itemBody.Fragile,
			itemBody.Value,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	destination, err := fulfillment.NewAddress(
		body.Destination.Street,
		body.Destination.City,
		body.Destination.State,
		body.Destination.ZipCode,
		body.Destination.Country,
	)
	if err != nil {
		return nil, err
	}

	preferences := fulfillment.Preferences{
		Speed:          fulfillment.SpeedPreference(body.Preferences.Speed),
		Cost:           fulfillment.CostPreference(body.Preferences.Cost),
		Sustainability: fulfillment.SustainabilityPreference(body.Preferences.Sustainability),
	}

	return fulfillment.NewRequest(orderID, items, destination, preferences, body.SpecialRequirements)
}

// errorJSON maps domain errors onto HTTP statuses: validation errors surface
// as 400, missing objects as 404, failed collaborators and storage as 500.
func errorJSON(ctx echo.Context, err error, fallback string) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}
