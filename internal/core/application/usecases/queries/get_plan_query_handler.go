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

// GetPlanQueryHandler retrieves stored plans straight from the database.
// The read side skips aggregate rehydration and returns the JSONB documents
// as they were written.
//
// Example:
//
//	handler := NewGetPlanQueryHandler(db)
//	query, _ := NewGetPlanQuery(planID)
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetPlanQueryHandler struct {
	db *gorm.DB
}

// NewGetPlanQueryHandler creates a handler for plan queries.
// Requires a GORM database connection for query execution.
func NewGetPlanQueryHandler(db *gorm.DB) GetPlanQueryHandler {
	return GetPlanQueryHandler{db: db}
}

// Handle executes the query and returns the plan read model.
// Returns an ObjectNotFoundError when no plan exists under the given ID.
func (h GetPlanQueryHandler) Handle(
	ctx context.Context,
	query GetPlanQuery,
) (GetPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlanQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			recommended_packaging,
			recommended_shipping,
			packaging_alternatives,
			shipping_alternatives,
			total_cost,
			estimated_delivery,
			carbon_footprint,
			confidence,
			optimization_score,
			instructions
		FROM plans
		WHERE id = ?
	`, query.PlanID().Bytes()).Row()

	var (
		id                    uuid.UUID
		orderID               uuid.UUID
		recommendedPackaging  []byte
		recommendedShipping   []byte
		packagingAlternatives []byte
		shippingAlternatives  []byte
		totalCost             float64
		estimatedDelivery     time.Time
		carbonFootprint       float64
		confidence            float64
		optimizationScore     float64
		instructions          []byte
	)

	err := row.Scan(
		&id,
		&orderID,
		&recommendedPackaging,
		&recommendedShipping,
		&packagingAlternatives,
		&shippingAlternatives,
		&totalCost,
		&estimatedDelivery,
		&carbonFootprint,
		&confidence,
		&optimizationScore,
		&instructions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPlanQueryResponse{}, errs.NewObjectNotFoundError("plan", query.PlanID().String())
		}
		return GetPlanQueryResponse{}, err
	}

	planID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPlanQueryResponse{}, err
	}

	planOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetPlanQueryResponse{}, err
	}

	response := GetPlanQueryResponse{
		ID:                planID,
		OrderID:           planOrderID,
		TotalCost:         totalCost,
		EstimatedDelivery: estimatedDelivery,
		CarbonFootprint:   carbonFootprint,
		Confidence:        confidence,
		OptimizationScore: optimizationScore,
	}

	if err := errors.Join(
		json.Unmarshal(recommendedPackaging, &response.RecommendedPackaging),
		json.Unmarshal(recommendedShipping, &response.RecommendedShipping),
		json.Unmarshal(packagingAlternatives, &response.PackagingAlternatives),
		json.Unmarshal(shippingAlternatives, &response.ShippingAlternatives),
		json.Unmarshal(instructions, &response.Instructions),
	); err != nil {
		return GetPlanQueryResponse{}, err
	}

	return response, nil
}
