package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUndeliveredShipmentsQueryIsNotConstructed = errors.New(
	"GetUndeliveredShipmentsQuery must be created via NewGetUndeliveredShipmentsQuery constructor",
)

// GetUndeliveredShipmentsQuery retrieves all shipments still in flight.
// Returns shipments outside the terminal statuses for monitoring and
// operations dashboards.
//
// Example:
//
//	query := NewGetUndeliveredShipmentsQuery()
//	handler := NewGetUndeliveredShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get undelivered shipments: %w", err)
//	}
//
//	fmt.Printf("%d shipments in flight\n", len(shipments))
//	for _, shp := range shipments {
//	    fmt.Printf("%s (%s) due %s\n", shp.TrackingNumber, shp.Status, shp.EstimatedDelivery)
//	}
type GetUndeliveredShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredShipmentsQuery creates a query to retrieve shipments in flight.
// This is a parameterless query that fetches every non-terminal shipment.
func NewGetUndeliveredShipmentsQuery() GetUndeliveredShipmentsQuery {
	return GetUndeliveredShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUndeliveredShipmentsQueryIsNotConstructed if validation fails.
func (q GetUndeliveredShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredShipmentsQueryIsNotConstructed)
}

// GetUndeliveredShipmentsQueryResponse is the summary read model of one
// shipment in flight. Histories are left out; GetShipmentQuery returns them.
type GetUndeliveredShipmentsQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	TrackingNumber    string
	Carrier           string
	Status            string
	CurrentLocation   string
	EstimatedDelivery time.Time
}
