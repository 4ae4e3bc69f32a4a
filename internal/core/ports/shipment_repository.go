package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates and their event histories.
type ShipmentRepository interface {
	// Add persists a newly created shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment and locks its row for the duration
	// of the surrounding transaction. Status updates for one shipment must
	// not interleave; callers combine this with a unit of work to apply
	// updates in arrival order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllUndelivered retrieves every shipment that has not reached a
	// terminal status. Used by the overdue sweep job.
	GetAllUndelivered(ctx context.Context) ([]*shipment.Shipment, error)
}
