package planrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlanRepository implements PlanRepository using GORM.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plan to the database.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *fulfillment.Plan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a plan by ID.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
