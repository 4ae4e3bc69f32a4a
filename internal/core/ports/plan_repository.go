package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// PlanRepository defines the persistence contract for fulfillment plans.
// Plans are written once after optimization and read back when a shipment
// is created from an accepted plan.
type PlanRepository interface {
	// Add persists a newly assembled plan.
	// The plan must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *fulfillment.Plan) error

	// Get retrieves a plan by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Plan, error)
}
