package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves shipments straight from the database.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(shipmentID)
//
//	shp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d tracking events\n", len(shp.Events))
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query and returns the shipment read model.
// Returns an ObjectNotFoundError when no shipment exists under the given ID.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			tracking_number,
			carrier,
			status,
			current_location,
			estimated_delivery,
			actual_delivery,
			events,
			delivery_attempts,
			notifications
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	var (
		id                uuid.UUID
		orderID           uuid.UUID
		trackingNumber    string
		carrier           string
		status            string
		currentLocation   string
		estimatedDelivery time.Time
		actualDelivery    sql.NullTime
		events            []byte
		deliveryAttempts  int
		notifications     []byte
	)

	err := row.Scan(
		&id,
		&orderID,
		&trackingNumber,
		&carrier,
		&status,
		&currentLocation,
		&estimatedDelivery,
		&actualDelivery,
		&events,
		&deliveryAttempts,
		&notifications,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
		}
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response := GetShipmentQueryResponse{
		ID:                shipmentID,
		OrderID:           shipmentOrderID,
		TrackingNumber:    trackingNumber,
		Carrier:           carrier,
		Status:            status,
		CurrentLocation:   currentLocation,
		EstimatedDelivery: estimatedDelivery,
		DeliveryAttempts:  deliveryAttempts,
	}

	if actualDelivery.Valid {
		delivered := actualDelivery.Time
		response.ActualDelivery = &delivered
	}

	if err := errors.Join(
		json.Unmarshal(events, &response.Events),
		json.Unmarshal(notifications, &response.Notifications),
	); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return response, nil
}
