package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredShipmentsQueryHandler retrieves shipments in flight from the
// database. Filters out terminal shipments to provide active delivery
// workload visibility.
//
// Example:
//
//	handler := NewGetUndeliveredShipmentsQueryHandler(db)
//	query := NewGetUndeliveredShipmentsQuery()
//
//	inFlight, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get undelivered shipments: %v", err)
//	    return err
//	}
type GetUndeliveredShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredShipmentsQueryHandler creates a handler for in-flight
// shipment queries. Requires a GORM database connection for query execution.
func NewGetUndeliveredShipmentsQueryHandler(db *gorm.DB) GetUndeliveredShipmentsQueryHandler {
	return GetUndeliveredShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered shipments.
// Returns shipments outside the delivered and exception statuses, sorted by
// estimated delivery so the most urgent come first.
func (h GetUndeliveredShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredShipmentsQuery,
) ([]GetUndeliveredShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUndeliveredShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			tracking_number,
			carrier,
			status,
			current_location,
			estimated_delivery
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY estimated_delivery
	`, shipment.Delivered.String(), shipment.Exception.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUndeliveredShipmentsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.TrackingNumber,
			&resp.Carrier,
			&resp.Status,
			&resp.CurrentLocation,
			&resp.EstimatedDelivery,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		shipmentOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = shipmentOrderID

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
