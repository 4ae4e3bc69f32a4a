// Package queries contains read-only operations against the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read database
// rows directly and return flat response models, bypassing domain aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a shipment and its histories by identifier.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	shp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s is %s\n", shp.TrackingNumber, shp.Status)
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	query := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

// TrackingEventResponse is the read model of one tracking history entry.
type TrackingEventResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

// NotificationEventResponse is the read model of one customer notification.
type NotificationEventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
}

// GetShipmentQueryResponse is the read model of a stored shipment.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	TrackingNumber    string
	Carrier           string
	Status            string
	CurrentLocation   string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	Events            []TrackingEventResponse
	DeliveryAttempts  int
	Notifications     []NotificationEventResponse
}
